// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a cashflowctl command (setup, doctor) and
// orchestrates operations across the pyexec, scaffold, venv, and envfile
// packages.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Splog, the project root,
//     and the resolved Python interpreter
//   - Actions are stateless - everything they inspect lives on the filesystem
//   - Actions handle user interaction through the tui package
package actions
