package netdev

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingField marks a decode of a record that lacks a required field.
	ErrMissingField = errors.New("required field missing")
	// ErrUnknownMode marks a mode string the current schema does not know.
	ErrUnknownMode = errors.New("unrecognized network mode")
)

// wireRecord is the persisted schema. BridgeInterface and
// FileDeviceInterface are written only for their own mode; on read a
// stale field left behind by a mode switch is simply ignored.
type wireRecord struct {
	Mode                *string `json:"Mode,omitempty"`
	MacAddress          *string `json:"MacAddress,omitempty"`
	BridgeInterface     *string `json:"BridgeInterface,omitempty"`
	FileDeviceInterface *string `json:"FileDeviceInterface,omitempty"`
}

// Decode parses persisted bytes into a fresh record.
func Decode(data []byte) (*ConfigRecord, error) {
	r := &ConfigRecord{}
	if err := json.Unmarshal(data, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Encode serializes the record into the persisted schema.
func (r *ConfigRecord) Encode() ([]byte, error) {
	return json.Marshal(r)
}

func (r *ConfigRecord) MarshalJSON() ([]byte, error) {
	mode := r.Mode().String()
	w := wireRecord{
		Mode:       &mode,
		MacAddress: &r.MacAddress,
	}
	switch p := r.Payload.(type) {
	case BridgedConfig:
		if p.Interface != "" {
			w.BridgeInterface = &p.Interface
		}
	case FileDeviceConfig:
		if p.Path != "" {
			w.FileDeviceInterface = &p.Path
		}
	}
	return json.Marshal(w)
}

func (r *ConfigRecord) UnmarshalJSON(data []byte) error {
	var w wireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("failed to decode network device record: %w", err)
	}
	if w.Mode == nil {
		return fmt.Errorf("%w: Mode", ErrMissingField)
	}
	if w.MacAddress == nil {
		return fmt.Errorf("%w: MacAddress", ErrMissingField)
	}
	mode, err := ParseMode(*w.Mode)
	if err != nil {
		return err
	}

	var payload Payload
	switch mode {
	case Bridged:
		var p BridgedConfig
		if w.BridgeInterface != nil {
			p.Interface = *w.BridgeInterface
		}
		payload = p
	case FileDevice:
		var p FileDeviceConfig
		if w.FileDeviceInterface != nil {
			p.Path = *w.FileDeviceInterface
		}
		payload = p
	default:
		payload = SharedConfig{}
	}

	*r = *NewWithMAC(*w.MacAddress, payload)
	return nil
}
