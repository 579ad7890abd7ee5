// Copyright (c) 2025 The oxen-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netaddr

import (
	"errors"
	"testing"
)

func TestGetNetworkAddressTor(t *testing.T) {
	_, err := GetNetworkAddress("onion", 0)
	if err == nil {
		t.Error("bare \"onion\" should be unsupported")
	}
	var kind ErrorKind
	if !errors.As(err, &kind) || kind != ErrUnsupportedAddress {
		t.Errorf("got %v, want ErrUnsupportedAddress", err)
	}

	_, err = GetNetworkAddress(".onion", 0)
	if !errors.As(err, &kind) || kind != ErrInvalidTorAddress {
		t.Errorf("got %v, want ErrInvalidTorAddress", err)
	}

	addr, err := GetNetworkAddress(testV3Onion, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr.Type() != TypeTor {
		t.Errorf("Type(): got %v, want TypeTor", addr.Type())
	}
	if got := addr.String(); got != testV3Onion+":1000" {
		t.Errorf("String(): got %q, want %q", got, testV3Onion+":1000")
	}

	addr, err = GetNetworkAddress(testV3Onion+":2000", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := addr.String(); got != testV3Onion+":2000" {
		t.Errorf("String(): got %q, want %q", got, testV3Onion+":2000")
	}

	_, err = GetNetworkAddress(testV3Onion+":65536", 1000)
	if !errors.As(err, &kind) || kind != ErrInvalidPort {
		t.Errorf("got %v, want ErrInvalidPort", err)
	}
}

func TestGetNetworkAddressI2P(t *testing.T) {
	addr, err := GetNetworkAddress(testB32I2P, 5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr.Type() != TypeI2P {
		t.Errorf("Type(): got %v, want TypeI2P", addr.Type())
	}

	_, err = GetNetworkAddress("i2p", 0)
	var kind ErrorKind
	if !errors.As(err, &kind) || kind != ErrUnsupportedAddress {
		t.Errorf("bare \"i2p\": got %v, want ErrUnsupportedAddress", err)
	}

	_, err = GetNetworkAddress(".b32.i2p", 0)
	if !errors.As(err, &kind) || kind != ErrInvalidI2PAddress {
		t.Errorf(".b32.i2p: got %v, want ErrInvalidI2PAddress", err)
	}
}

func TestGetNetworkAddressIPv4(t *testing.T) {
	addr, err := GetNetworkAddress("127.0.0.1", 8333)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr.Type() != TypeIPv4 {
		t.Errorf("Type(): got %v, want TypeIPv4", addr.Type())
	}
	if got := addr.String(); got != "127.0.0.1:8333" {
		t.Errorf("String(): got %q, want %q", got, "127.0.0.1:8333")
	}

	addr, err = GetNetworkAddress("192.168.1.1:9999", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := addr.String(); got != "192.168.1.1:9999" {
		t.Errorf("String(): got %q, want %q", got, "192.168.1.1:9999")
	}
}

func TestGetNetworkAddressIPv6(t *testing.T) {
	addr, err := GetNetworkAddress("::1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr.Type() != TypeIPv6 {
		t.Errorf("Type(): got %v, want TypeIPv6", addr.Type())
	}

	addr, err = GetNetworkAddress("[::1]:1234", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := addr.String(); got != "[::1]:1234" {
		t.Errorf("String(): got %q, want %q", got, "[::1]:1234")
	}
}

func TestGetNetworkAddressUnsupported(t *testing.T) {
	tests := []string{
		"",
		"not a valid host at all $$$",
		"999.999.999.999",
	}

	for _, text := range tests {
		_, err := GetNetworkAddress(text, 0)
		if err == nil {
			t.Errorf("GetNetworkAddress(%q): expected error, got nil", text)
			continue
		}
		var kind ErrorKind
		if !errors.As(err, &kind) || kind != ErrUnsupportedAddress {
			t.Errorf("GetNetworkAddress(%q): got %v, want ErrUnsupportedAddress", text, err)
		}
	}
}
