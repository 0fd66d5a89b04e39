package config

import (
	"encoding/json"
	"errors"

	"scsiphy-go/drivers/scsiphy"
	"scsiphy-go/errcode"
)

// EmbeddedConfigLookup allows overriding how profiles are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

// Profile is the bus timing configuration for one device build.
type Profile struct {
	Device        string `json:"-"`
	AsyncSpeed    string `json:"async_speed"`
	SyncPeriod    int    `json:"sync_period"` // 0 = async only
	FastSelection bool   `json:"fast_selection"`
}

// Load reads the embedded profile for device.
func Load(device string) (Profile, error) {
	if device == "" {
		return Profile{}, errors.New("missing device ID")
	}
	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return Profile{}, errors.New("no embedded config for device: " + device)
	}
	var p Profile
	if err := DecodeJSON(raw, &p); err != nil {
		return Profile{}, &errcode.E{C: errcode.InvalidConfiguration, Op: "Load", Msg: device, Err: err}
	}
	p.Device = device
	return p, nil
}

// Resolve turns the profile into sequencer counts. A bad async speed fails
// outright. A rejected sync period falls back to async only, since async
// timing is always safe.
func (p Profile) Resolve() (scsiphy.Program, error) {
	speed, err := scsiphy.ParseAsyncSpeed(p.AsyncSpeed)
	if err != nil {
		return scsiphy.Program{}, err
	}
	period := scsiphy.Period(p.SyncPeriod)
	pg, err := scsiphy.NewProgram(speed, period, p.FastSelection)
	if err == nil {
		return pg, nil
	}
	println("Warn:", p.Device, "sync disabled:", err.Error())
	return scsiphy.NewProgram(speed, scsiphy.AsyncOnly, p.FastSelection)
}

// DecodeJSON decodes raw JSON bytes, a string, or an already-decoded value
// into dst.
func DecodeJSON[T any](src any, dst *T) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return json.Unmarshal(b, dst)
	}
}
