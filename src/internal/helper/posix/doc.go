// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//   - ExecutableDir: Returns the directory of the running executable
//   - ResolvePath: Resolves relative input/output paths against ExecutableDir
//
// # Usage Examples
//
//	import "github.com/H0llyW00dzZ/txn-triple-extractor/src/internal/helper/posix"
//
//	exeName := posix.GetExecutableName()
//	fmt.Printf("Usage: %s extract [-i input.csv] [-o output.csv]\n", exeName)
//
//	in := posix.ResolvePath("payment_attempts.csv")
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
