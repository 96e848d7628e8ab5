// Package pkgmgr wraps the external JavaScript package manager (npm, pnpm,
// or yarn) behind a narrow Runner interface so callers never touch os/exec
// directly and tests can substitute a fake process.
package pkgmgr
