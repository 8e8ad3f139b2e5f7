package escrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/store"
)

func TestConfigurationValidate(t *testing.T) {
	cases := map[string]struct {
		conf    Configuration
		wantErr *errors.Error
	}{
		"defaults are valid": {
			conf: *NewConfiguration("remit-test"),
		},
		"missing instance identity": {
			conf:    Configuration{MinLeadTime: 3600, SkewTolerance: 60},
			wantErr: errors.ErrEmpty,
		},
		"zero lead time": {
			conf:    Configuration{InstanceID: "x", MinLeadTime: 0},
			wantErr: errors.ErrInput,
		},
		"negative skew": {
			conf:    Configuration{InstanceID: "x", MinLeadTime: 3600, SkewTolerance: -1},
			wantErr: errors.ErrInput,
		},
		"skew swallows the lead time": {
			conf:    Configuration{InstanceID: "x", MinLeadTime: 60, SkewTolerance: 60},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.conf.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestConfigurationRoundTrip(t *testing.T) {
	db := store.MemStore()

	if _, err := loadConfiguration(db); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want a not found error, got %+v", err)
	}

	saved := NewConfiguration("remit-test")
	require.NoError(t, SaveConfiguration(db, saved))

	loaded, err := loadConfiguration(db)
	require.NoError(t, err)
	assert.Equal(t, saved.InstanceID, loaded.InstanceID)
	assert.Equal(t, saved.MinLeadTime, loaded.MinLeadTime)
	assert.Equal(t, saved.SkewTolerance, loaded.SkewTolerance)
}

func TestSaveConfigurationRejectsInvalid(t *testing.T) {
	db := store.MemStore()
	err := SaveConfiguration(db, &Configuration{})
	assert.Error(t, err)
}
