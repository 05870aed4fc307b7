// Package runtime provides the execution context for cashflowctl commands.
//
// It encapsulates shared dependencies needed by actions, such as the resolved
// Python interpreter, logger, and project root path.
package runtime
