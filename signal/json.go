package signal

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/luxlabs/go-lux/encode"
	"github.com/luxlabs/go-lux/ir"
	"github.com/luxlabs/go-lux/schema"
)

type signalJSON struct {
	ID            string            `json:"id"`
	SchemaName    string            `json:"schema_name"`
	SchemaVersion string            `json:"schema_version"`
	Payload       json.RawMessage   `json:"payload"`
	Sender        string            `json:"sender,omitempty"`
	Recipient     string            `json:"recipient,omitempty"`
	Topic         string            `json:"topic,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

func (s *Signal) MarshalJSON() ([]byte, error) {
	payload, err := encode.WireJSON(s.Payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&signalJSON{
		ID:            s.ID,
		SchemaName:    s.SchemaName,
		SchemaVersion: s.SchemaVersion,
		Payload:       payload,
		Sender:        s.Sender,
		Recipient:     s.Recipient,
		Topic:         s.Topic,
		Timestamp:     s.Timestamp,
		Metadata:      s.Metadata,
	})
}

// ParseSignal reconstructs a signal from its JSON form, resolving the
// schema through the registry and revalidating the payload. The
// stored schema version is looked up exactly; a signal serialized
// under a retired version still parses as long as the version remains
// registered.
func ParseSignal(reg *schema.Registry, d []byte) (*Signal, error) {
	var sj signalJSON
	if err := json.Unmarshal(d, &sj); err != nil {
		return nil, fmt.Errorf("invalid signal document: %w", err)
	}
	if sj.ID == "" {
		return nil, fmt.Errorf("invalid signal document: missing id")
	}
	payload, err := ir.Decode(sj.Payload)
	if err != nil {
		return nil, err
	}
	return New(reg, sj.SchemaName, sj.SchemaVersion, payload,
		WithID(sj.ID),
		WithSender(sj.Sender),
		WithRecipient(sj.Recipient),
		WithTopic(sj.Topic),
		WithTimestamp(sj.Timestamp),
		WithMetadata(sj.Metadata),
	)
}
