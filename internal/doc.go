// Package internal holds helpers private to goEdu.
//
// # Sub-packages
//
//   - events: async event dispatch (Dispatcher + Sink implementations)
//   - logging: zerolog construction from level/format configuration
//
// # What this package must NOT do
//
//   - Export types that appear in the public goEdu API except through aliases
//     declared in the root package.
//   - Be imported by any package outside the goEdu module.
package internal
