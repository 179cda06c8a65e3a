// Package inventory contains the host inventory documents converted by hostconv.
package inventory

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/google/uuid"

	textserde "github.com/get-eventually/go-textserde"
)

// ErrInvalidHost is returned by Validate when a Host entry is inconsistent.
var ErrInvalidHost = errors.New("inventory: invalid host")

// Host is a single machine entry in an Inventory.
type Host struct {
	ID      textserde.Text[uuid.UUID]            `json:"id" yaml:"id" msgpack:"id"`
	Name    string                               `json:"name" yaml:"name" msgpack:"name"`
	Address textserde.Text[netip.Addr]           `json:"address" yaml:"address" msgpack:"address"`
	Gateway textserde.OptionalText[netip.Addr]   `json:"gateway" yaml:"gateway" msgpack:"gateway"`
	Network textserde.OptionalText[netip.Prefix] `json:"network" yaml:"network" msgpack:"network"`
}

// Inventory is a list of hosts.
type Inventory struct {
	Hosts []Host `json:"hosts" yaml:"hosts" msgpack:"hosts"`
}

// Validate checks every host has a name, a valid address and a unique id,
// and that addresses and gateways fall in the host network, when one is set.
func (inv *Inventory) Validate() error {
	seen := make(map[uuid.UUID]struct{}, len(inv.Hosts))

	for i, host := range inv.Hosts {
		if err := host.validate(); err != nil {
			return fmt.Errorf("%w: hosts[%d], %v", ErrInvalidHost, i, err)
		}

		id := host.ID.Get()
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: hosts[%d], duplicate id %s", ErrInvalidHost, i, id)
		}

		seen[id] = struct{}{}
	}

	return nil
}

func (h Host) validate() error {
	if h.Name == "" {
		return errors.New("missing name")
	}

	if h.ID.Get() == uuid.Nil {
		return errors.New("missing id")
	}

	address := h.Address.Get()
	if !address.IsValid() {
		return errors.New("missing address")
	}

	network, ok := h.Network.Get()
	if !ok {
		return nil
	}

	if !network.Contains(address) {
		return fmt.Errorf("address %s is not in network %s", address, network)
	}

	if gateway, ok := h.Gateway.Get(); ok && !network.Contains(gateway) {
		return fmt.Errorf("gateway %s is not in network %s", gateway, network)
	}

	return nil
}
