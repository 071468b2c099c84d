// Package commands defines the nacl CLI.
//
// Commands
//
//   - auth     Compute an HMAC-SHA-512-256 authenticator
//   - verify   Check an authenticator
//   - keygen   Generate or derive an Ed25519 keypair
//   - sign     Produce a signed message
//   - open     Verify a signed message and print its payload
//   - stream   Print XSalsa20 keystream, or its SHA-256
//   - xor      XOR input with XSalsa20 keystream
//   - kat      Check an Ed25519 known-answer file
//   - bench    Measure every primitive
//
// Keys, nonces and messages are hex-encoded. When --message is absent the
// input is read from stdin as hex, so commands can be piped into each other:
//
//	nacl sign --key $SK --message 616263 | nacl open --key $PK
//
// # Logging
//
// --log-level and --log-format configure logrus before any subcommand runs.
// NACL_LOG_LEVEL and NACL_LOG_FORMAT supply the defaults.
package commands
