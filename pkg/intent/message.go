package intent

import (
	"fmt"

	"github.com/Layr-Labs/intent-signing-go/pkg/codec"
)

// IntentMessage binds a payload to the Intent it is signed under.
type IntentMessage[T codec.Encodable] struct {
	Intent Intent
	Value  T
}

func NewIntentMessage[T codec.Encodable](intent Intent, value T) IntentMessage[T] {
	return IntentMessage[T]{
		Intent: intent,
		Value:  value,
	}
}

// Bytes returns the exact byte string that is signed:
// intent prefix (3 bytes) followed by the payload's canonical encoding, with
// no length prefix or other framing.
func (m IntentMessage[T]) Bytes() ([]byte, error) {
	payload, err := m.Value.MarshalCanonical()
	if err != nil {
		return nil, fmt.Errorf("failed to encode intent message payload: %w", err)
	}
	encoded := make([]byte, 0, IntentLength+len(payload))
	encoded = append(encoded, m.Intent.Bytes()...)
	encoded = append(encoded, payload...)
	return encoded, nil
}

// DecodeIntentMessage reverses IntentMessage.Bytes for a known payload type.
func DecodeIntentMessage[T codec.Encodable, PT interface {
	*T
	codec.Decodable
}](data []byte) (IntentMessage[T], error) {
	if len(data) < IntentLength {
		return IntentMessage[T]{}, fmt.Errorf("intent message too short: %d bytes", len(data))
	}
	in, err := ParseIntent(data[:IntentLength])
	if err != nil {
		return IntentMessage[T]{}, err
	}
	var value T
	if err := PT(&value).UnmarshalCanonical(data[IntentLength:]); err != nil {
		return IntentMessage[T]{}, fmt.Errorf("failed to decode intent message payload: %w", err)
	}
	return NewIntentMessage(in, value), nil
}

// PersonalMessage is an arbitrary user attestation. It is signed under
// IntentScope_PersonalMessage so it can never be replayed as a transaction.
type PersonalMessage struct {
	Message []byte
}

func (m PersonalMessage) MarshalCanonical() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *PersonalMessage) UnmarshalCanonical(data []byte) error {
	return codec.Unmarshal(data, m)
}
