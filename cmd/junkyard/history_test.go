package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/junkyard"
	main "github.com/fwojciec/junkyard/cmd/junkyard"
	"github.com/fwojciec/junkyard/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists vehicles with first and last seen", func(t *testing.T) {
		t.Parallel()

		var gotFilter junkyard.VehicleFilter
		vehicles := &mock.VehicleService{
			FindVehiclesFn: func(_ context.Context, filter junkyard.VehicleFilter) ([]*junkyard.Vehicle, error) {
				gotFilter = filter
				return []*junkyard.Vehicle{{
					InventoryRecord: *testRecord(),
					FirstSeen:       time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
					LastSeen:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Vehicles: vehicles,
		}

		require.NoError(t, (&main.HistoryCmd{Make: "Subaru", Limit: 10}).Run(deps))

		require.NotNil(t, gotFilter.Make)
		assert.Equal(t, "Subaru", *gotFilter.Make)
		assert.Nil(t, gotFilter.Model)
		assert.Equal(t, 10, gotFilter.Limit)

		output := stdout.String()
		assert.Contains(t, output, "2005_subaru_impreza_wagon_132")
		assert.Contains(t, output, "first seen 2025-05-01")
		assert.Contains(t, output, "last seen 2025-06-01")
	})

	t.Run("shows helpful message when nothing is tracked", func(t *testing.T) {
		t.Parallel()

		vehicles := &mock.VehicleService{
			FindVehiclesFn: func(_ context.Context, _ junkyard.VehicleFilter) ([]*junkyard.Vehicle, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Vehicles: vehicles,
		}

		require.NoError(t, (&main.HistoryCmd{}).Run(deps))

		assert.Contains(t, stdout.String(), "No vehicles tracked yet")
	})

	t.Run("returns store errors", func(t *testing.T) {
		t.Parallel()

		vehicles := &mock.VehicleService{
			FindVehiclesFn: func(_ context.Context, _ junkyard.VehicleFilter) ([]*junkyard.Vehicle, error) {
				return nil, errors.New("database locked")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Vehicles: vehicles,
		}

		err := (&main.HistoryCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: Internal error")
	})
}

func TestRunsCmd_Run(t *testing.T) {
	t.Parallel()

	runs := &mock.SearchRunService{
		FindSearchRunsFn: func(_ context.Context, filter junkyard.SearchRunFilter) ([]*junkyard.SearchRun, error) {
			assert.Equal(t, 5, filter.Limit)
			return []*junkyard.SearchRun{{
				ID:          "run-1",
				URL:         "https://www.picknpull.com/check-inventory/vehicle-search?make=226",
				ContentHash: "0123456789abcdef",
				TotalFound:  2,
				SearchedAt:  time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
			}}, nil
		},
	}

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
		Runs:   runs,
	}

	require.NoError(t, (&main.RunsCmd{Limit: 5}).Run(deps))

	assert.Contains(t, stdout.String(), "2025-06-01 12:30  2 found  0123456789abcdef  https://www.picknpull.com/")
}
