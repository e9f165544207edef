package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flightfinder/flightfinder/internal/domain"
)

func TestIsHiddenCityConnection(t *testing.T) {
	tests := []struct {
		name                string
		stops               []string
		intendedDestination string
		want                bool
	}{
		{
			name:                "wanted city is a connection",
			stops:               []string{"JFK", "CDG", "YAO", "LBV"},
			intendedDestination: "YAO",
			want:                true,
		},
		{
			name:                "wanted city is the final destination",
			stops:               []string{"JFK", "CDG", "YAO", "LBV"},
			intendedDestination: "LBV",
			want:                false,
		},
		{
			name:                "wanted city is the ticketed origin",
			stops:               []string{"JFK", "CDG", "YAO", "LBV"},
			intendedDestination: "JFK",
			want:                false,
		},
		{
			name:                "comparison is case-insensitive",
			stops:               []string{"JFK", "cdg", "yao", "LBV"},
			intendedDestination: "Yao",
			want:                true,
		},
		{
			name:                "direct flight has no hidden city",
			stops:               []string{"JFK", "YAO"},
			intendedDestination: "YAO",
			want:                false,
		},
		{
			name:                "single entry sequence",
			stops:               []string{"JFK"},
			intendedDestination: "JFK",
			want:                false,
		},
		{
			name:                "empty sequence",
			stops:               nil,
			intendedDestination: "YAO",
			want:                false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsHiddenCityConnection(tt.stops, tt.intendedDestination)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSkiplaggedFinder_FindOnwardDestinations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	onward := map[string]struct{}{
		"CDG": {}, "ADD": {}, "KGL": {}, "LBV": {},
	}

	routes := domain.NewMockRouteCache(ctrl)
	routes.EXPECT().DestinationsFrom(gomock.Any(), "YAO").Return(onward, nil)

	finder := NewSkiplaggedFinder(routes)

	got, err := finder.FindOnwardDestinations(context.Background(), "YAO")
	require.NoError(t, err)
	assert.Len(t, got, 4)
	assert.Contains(t, got, "CDG")
	assert.Contains(t, got, "ADD")
	assert.Contains(t, got, "KGL")
	assert.Contains(t, got, "LBV")
}

func TestSkiplaggedFinder_BuildTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routes := domain.NewMockRouteCache(ctrl)
	routes.EXPECT().DestinationsFrom(gomock.Any(), "YAO").Return(map[string]struct{}{
		"LBV": {}, "KGL": {},
	}, nil)

	finder := NewSkiplaggedFinder(routes)

	targets, err := finder.BuildTargets(context.Background(), "JFK", "YAO")
	require.NoError(t, err)
	require.Len(t, targets, 2)

	destinations := make(map[string]bool)
	for _, target := range targets {
		assert.Equal(t, "JFK", target.Origin)
		assert.Equal(t, "YAO", target.IntendedDestination)
		destinations[target.Destination] = true
	}
	assert.True(t, destinations["LBV"])
	assert.True(t, destinations["KGL"])
}

func TestSkiplaggedFinder_BuildTargets_CacheError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routes := domain.NewMockRouteCache(ctrl)
	routes.EXPECT().DestinationsFrom(gomock.Any(), "YAO").Return(nil, errors.New("db locked"))

	finder := NewSkiplaggedFinder(routes)

	targets, err := finder.BuildTargets(context.Background(), "JFK", "YAO")
	assert.Error(t, err)
	assert.Nil(t, targets)
}

func TestSkiplaggedFinder_BuildTargets_NoOnwardRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routes := domain.NewMockRouteCache(ctrl)
	routes.EXPECT().DestinationsFrom(gomock.Any(), "YAO").Return(map[string]struct{}{}, nil)

	finder := NewSkiplaggedFinder(routes)

	targets, err := finder.BuildTargets(context.Background(), "JFK", "YAO")
	require.NoError(t, err)
	assert.Empty(t, targets)
}
