package probe

import (
	"os"
)

// ShowHelp prints usage information for the probe tool.
func ShowHelp() {
	_, _ = os.Stdout.WriteString(`randsum probe
=============

Sends GET / to a running randsum server and verifies every response:
the body is "{a} + {b} = {sum}", sum == a + b, and both operands fall
within [min, max].

Usage:
  go run ./cmd/probe [options]

Options:
  -url string
        Base URL of the service (default "http://127.0.0.1:5000")
  -requests int
        Number of requests to send (default 10000)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 5s)
  -min int
        Expected lower operand bound (default 0)
  -max int
        Expected upper operand bound (default 100)
  -verbose
        Log every failed request
  -help
        Show this help message

Examples:
  go run ./cmd/probe -requests 50000 -workers 16
  go run ./cmd/probe -url http://127.0.0.1:8080 -min 1 -max 6
`)
}
