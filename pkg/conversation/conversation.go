// Package conversation holds the chat-style message list demo: immutable
// messages, the embedded sample conversation and the Thread view model that
// tracks which cards are expanded.
package conversation

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleYAML []byte

// Message is one chat entry.
type Message struct {
	Author string `yaml:"author"`
	Body   string `yaml:"body"`
}

// Conversation is an ordered list of messages; insertion order is display
// order.
type Conversation []Message

type document struct {
	Messages []Message `yaml:"messages"`
}

// Parse reads a YAML document with a top-level "messages" list.
func Parse(r io.Reader) (Conversation, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return Conversation{}, nil
		}
		return nil, fmt.Errorf("conversation: parse YAML: %w", err)
	}
	for i, m := range doc.Messages {
		if m.Author == "" {
			return nil, fmt.Errorf("conversation: message %d has no author", i)
		}
	}
	return Conversation(doc.Messages), nil
}

// Sample returns the embedded demo conversation.
func Sample() Conversation {
	c, err := Parse(bytes.NewReader(sampleYAML))
	if err != nil {
		panic(fmt.Sprintf("conversation: embedded sample is invalid: %v", err))
	}
	return c
}

// PagePreview is the single card shown by the Day and Night screens.
func PagePreview(page string) Message {
	return Message{Author: "Developer", Body: "This page is " + page}
}
