package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestListFixtureIDsWithoutPredictions(t *testing.T) {
	t.Parallel()

	fixtures := &fixtureRepoStub{ids: []int64{1, 2, 3, 4}}
	predictions := &predictionRepoStub{fixtureIDs: []int64{2, 4}}
	service := NewFixtureQueryService(fixtures, predictions)

	ids, err := service.ListFixtureIDsWithoutPredictions(context.Background())
	if err != nil {
		t.Fatalf("list fixtures without predictions: %v", err)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestListFixtureIDsWithoutPredictionsEmptyPredictions(t *testing.T) {
	t.Parallel()

	fixtures := &fixtureRepoStub{ids: []int64{1, 2, 3}}
	predictions := &predictionRepoStub{}
	service := NewFixtureQueryService(fixtures, predictions)

	ids, err := service.ListFixtureIDsWithoutPredictions(context.Background())
	if err != nil {
		t.Fatalf("list fixtures without predictions: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected every fixture id, got %v", ids)
	}
}

func TestListFixtureIDsWithoutPredictionsStorageError(t *testing.T) {
	t.Parallel()

	storageErr := errors.New("select prediction fixture ids: timeout")
	fixtures := &fixtureRepoStub{ids: []int64{1}}
	predictions := &predictionRepoStub{listErr: storageErr}
	service := NewFixtureQueryService(fixtures, predictions)

	if _, err := service.ListFixtureIDsWithoutPredictions(context.Background()); !errors.Is(err, storageErr) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
