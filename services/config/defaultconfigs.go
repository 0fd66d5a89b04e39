package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID
// Val: raw JSON bytes for that device
// -----------------------------------------------------------------------------

const cfgV6 = `{
  "async_speed": "5MB/s",
  "sync_period": 25,
  "fast_selection": false
}`

const cfgBench = `{
  "async_speed": "turbo",
  "sync_period": 50,
  "fast_selection": true
}`

const cfgLegacy = `{
  "async_speed": "1.5MB/s",
  "sync_period": 0
}`

var embeddedConfigs = map[string][]byte{
	"v6":     []byte(cfgV6),
	"bench":  []byte(cfgBench),
	"legacy": []byte(cfgLegacy),
}

// Devices lists the embedded profile names.
func Devices() []string {
	return []string{"v6", "bench", "legacy"}
}
