// Package log provides secure logging built on top of the standard slog
// package.
//
// Task results come from network devices, and device output regularly
// carries credentials: enable secrets, SNMP communities, local user
// passwords, private keys. The SecureHandler masks such values before they
// reach any log sink:
//   - attributes whose key names a secret (password, secret, community,
//     enable, token, private key)
//   - values that look like device secrets (Cisco type 5/7/8/9 hashes,
//     Juniper $9$ strings, "secret 5 ..." configuration lines)
//   - PEM private keys, bearer tokens and JWTs
//
// Even in verbose mode, sensitive values are masked.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("connected", "host", "R1", "password", "cisco") // password=***REDACTED***
package log
