package inventory_test

import (
	"net/netip"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	textserde "github.com/get-eventually/go-textserde"
	"github.com/get-eventually/go-textserde/internal/inventory"
)

func newHost(name, address string) inventory.Host {
	return inventory.Host{
		ID:      textserde.NewText(uuid.New()),
		Name:    name,
		Address: textserde.NewText(netip.MustParseAddr(address)),
	}
}

func TestInventory_Validate(t *testing.T) {
	t.Run("it accepts hosts without network", func(t *testing.T) {
		inv := inventory.Inventory{Hosts: []inventory.Host{
			newHost("web-1", "10.0.0.10"),
			newHost("web-2", "10.0.0.11"),
		}}

		assert.NoError(t, inv.Validate())
	})

	t.Run("it accepts addresses and gateways inside the network", func(t *testing.T) {
		host := newHost("db-1", "10.0.1.5")
		host.Network = textserde.Some(netip.MustParsePrefix("10.0.1.0/24"))
		host.Gateway = textserde.Some(netip.MustParseAddr("10.0.1.1"))

		inv := inventory.Inventory{Hosts: []inventory.Host{host}}
		assert.NoError(t, inv.Validate())
	})

	t.Run("it refuses gateways outside the network", func(t *testing.T) {
		host := newHost("db-1", "10.0.1.5")
		host.Network = textserde.Some(netip.MustParsePrefix("10.0.1.0/24"))
		host.Gateway = textserde.Some(netip.MustParseAddr("10.0.2.1"))

		inv := inventory.Inventory{Hosts: []inventory.Host{host}}
		assert.ErrorIs(t, inv.Validate(), inventory.ErrInvalidHost)
	})

	t.Run("it refuses addresses outside the network", func(t *testing.T) {
		host := newHost("db-1", "192.168.0.5")
		host.Network = textserde.Some(netip.MustParsePrefix("10.0.1.0/24"))

		inv := inventory.Inventory{Hosts: []inventory.Host{host}}
		assert.ErrorIs(t, inv.Validate(), inventory.ErrInvalidHost)
	})

	t.Run("it refuses duplicate ids", func(t *testing.T) {
		host := newHost("web-1", "10.0.0.10")
		duplicate := newHost("web-2", "10.0.0.11")
		duplicate.ID = host.ID

		inv := inventory.Inventory{Hosts: []inventory.Host{host, duplicate}}
		err := inv.Validate()
		require.ErrorIs(t, err, inventory.ErrInvalidHost)
		assert.Contains(t, err.Error(), "duplicate id")
	})

	t.Run("it refuses hosts without name", func(t *testing.T) {
		inv := inventory.Inventory{Hosts: []inventory.Host{newHost("", "10.0.0.10")}}
		assert.ErrorIs(t, inv.Validate(), inventory.ErrInvalidHost)
	})
}
