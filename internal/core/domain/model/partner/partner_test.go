package partner_test

import (
	"testing"
	"time"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/core/domain/model/partner"
	"opspro/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryPartner(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create valid partner", func(t *testing.T) {
		p, err := partner.NewDeliveryPartner("rahul", "Rahul Kumar", "+91-9999999999", true, now)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "rahul", p.Username())
		assert.Equal(t, "Rahul Kumar", p.Name())
		assert.Equal(t, "+91-9999999999", p.PhoneNumber())
		assert.True(t, p.IsAvailable())
		assert.Nil(t, p.ETA())
		assert.Equal(t, now, p.CreatedAt())
		require.Error(t, p.ID().Validate(), "id is server-assigned, not set at creation")
	})

	t.Run("should fail with empty attributes", func(t *testing.T) {
		cases := []struct {
			name                          string
			username, fullName, phoneName string
		}{
			{"empty username", "", "Rahul", "+91-1"},
			{"empty name", "rahul", "", "+91-1"},
			{"empty phone", "rahul", "Rahul", ""},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := partner.NewDeliveryPartner(tc.username, tc.fullName, tc.phoneName, true, now)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValidation)
			})
		}
	})

	t.Run("zero value partner fails validation", func(t *testing.T) {
		var p partner.DeliveryPartner

		require.Error(t, p.Validate())
	})
}

func TestRestoreDeliveryPartner(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id, _ := kernel.NewID(7)

	t.Run("should restore persisted state", func(t *testing.T) {
		eta := 12

		p, err := partner.RestoreDeliveryPartner(id, "rahul", "Rahul Kumar", "+91-1",
			false, &eta, now, now.Add(time.Hour))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.False(t, p.IsAvailable())
		require.NotNil(t, p.ETA())
		assert.Equal(t, 12, *p.ETA())
	})

	t.Run("should reject missing id", func(t *testing.T) {
		var zeroID kernel.ID

		_, err := partner.RestoreDeliveryPartner(zeroID, "rahul", "Rahul", "+91-1",
			true, nil, now, now)

		require.Error(t, err)
	})

	t.Run("should reject negative stored eta", func(t *testing.T) {
		eta := -3

		_, err := partner.RestoreDeliveryPartner(id, "rahul", "Rahul", "+91-1",
			true, &eta, now, now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestDeliveryPartner_AttachID(t *testing.T) {
	now := time.Now()
	id, _ := kernel.NewID(7)

	t.Run("should attach server-assigned id once", func(t *testing.T) {
		p, _ := partner.NewDeliveryPartner("rahul", "Rahul", "+91-1", true, now)

		require.NoError(t, p.AttachID(id))
		assert.True(t, p.ID().IsEqual(id))
	})

	t.Run("should refuse a second id", func(t *testing.T) {
		p, _ := partner.NewDeliveryPartner("rahul", "Rahul", "+91-1", true, now)
		require.NoError(t, p.AttachID(id))

		other, _ := kernel.NewID(8)
		err := p.AttachID(other)

		require.Error(t, err)
		assert.Equal(t, partner.ErrPartnerIDAlreadyAttached, err)
	})
}

func TestDeliveryPartner_SetAvailability(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	p, _ := partner.NewDeliveryPartner("rahul", "Rahul", "+91-1", true, now)

	toggledAt := now.Add(5 * time.Minute)
	p.SetAvailability(false, toggledAt)

	assert.False(t, p.IsAvailable())
	assert.Equal(t, toggledAt, p.UpdatedAt())

	p.SetAvailability(true, toggledAt.Add(time.Minute))
	assert.True(t, p.IsAvailable())
}

func TestDeliveryPartner_SetETA(t *testing.T) {
	now := time.Now()
	p, _ := partner.NewDeliveryPartner("rahul", "Rahul", "+91-1", true, now)

	t.Run("should accept zero and positive values", func(t *testing.T) {
		require.NoError(t, p.SetETA(0, now))
		require.NoError(t, p.SetETA(25, now))

		require.NotNil(t, p.ETA())
		assert.Equal(t, 25, *p.ETA())
	})

	t.Run("should reject negative values", func(t *testing.T) {
		err := p.SetETA(-1, now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, 25, *p.ETA(), "prior value must stay intact")
	})

	t.Run("returned eta is a copy", func(t *testing.T) {
		eta := p.ETA()
		*eta = 99

		assert.Equal(t, 25, *p.ETA())
	})
}
