// Package httperrors renders network and server failures as user-friendly
// terminal messages. It detects common transport error types (timeout, DNS,
// connection refused, TLS) and prints actionable hints; the original error
// is returned wrapped so callers and logs keep the technical detail.
package httperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"

	"damafashion/cli/internal/api"
)

// Format converts a failed API call into a user-friendly message for the
// given action (e.g. "loading products"). Only transport and 5xx failures
// get a rendered hint; authorization and validation failures pass through
// untouched, since those are the caller's story to tell.
func Format(err error, action string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, api.ErrUnauthorized) {
		return err
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.Status >= 500 {
			showServerError(action)
		}
		return err
	}

	var urlErr *url.Error
	if !errors.As(err, &urlErr) && !errors.Is(err, context.DeadlineExceeded) {
		// Not a transport failure (e.g. local validation): pass through.
		return err
	}

	switch {
	case isTimeout(err):
		showTimeout(action)
	case isDNS(err):
		showDNS(action)
	case isConnectionRefused(err):
		showConnectionRefused(action)
	case isTLS(err):
		showTLS(action)
	default:
		showGeneric(action, err.Error())
	}
	return fmt.Errorf("network error while %s: %w", action, err)
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "timeout") || strings.Contains(s, "deadline exceeded")
}

func isDNS(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isConnectionRefused(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

func isTLS(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "tls") ||
		strings.Contains(s, "certificate") ||
		strings.Contains(s, "handshake")
}

func showTimeout(action string) {
	pterm.Warning.Printf("Connection timeout while %s\n", action)
	pterm.Println("The inventory server took too long to respond.")
	pterm.Println("Check your connection and try again in a few moments.")
}

func showDNS(action string) {
	pterm.Warning.Printf("Cannot resolve the server address while %s\n", action)
	pterm.Println("Check your internet connection and the DAMA_API_URL setting.")
}

func showConnectionRefused(action string) {
	pterm.Warning.Printf("Connection refused while %s\n", action)
	pterm.Println("The inventory server is not accepting connections.")
	pterm.Println("Verify the server is running and DAMA_API_URL points at it.")
}

func showTLS(action string) {
	pterm.Warning.Printf("Secure connection failed while %s\n", action)
	pterm.Println("Check the server certificate, proxy settings, and your system clock.")
}

func showServerError(action string) {
	pterm.Warning.Printf("Server error while %s\n", action)
	pterm.Println("The inventory server hit an internal error. Try again shortly.")
}

func showGeneric(action, detail string) {
	pterm.Error.Printf("Cannot reach the inventory server while %s\n", action)
	if len(detail) > 100 {
		detail = detail[:100] + "..."
	}
	pterm.Debug.Printf("Technical details: %s\n", detail)
}
