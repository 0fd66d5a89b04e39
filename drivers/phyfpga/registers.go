package phyfpga

const (
	// 7-bit I2C address of the sequencer's configuration port.
	AddressDefault = 0x42

	// --- Register sub-addresses (byte registers, auto-increment) ---

	// Async phase counts; one burst of four.
	regAsyncAssert = 0x00
	regAsyncDeskew = 0x01
	regAsyncHold   = 0x02
	regAsyncGlitch = 0x03

	// Sync phase counts; one burst of three.
	regSyncDeskew = 0x04
	regSyncHold   = 0x05
	regSyncAssert = 0x06

	regSelection = 0x07
	regMode      = 0x08

	numRegs = 9

	// --- MODE bits ---
	modeSyncEnable = 1 << 0
	modeSyncRead   = 1 << 1
)
