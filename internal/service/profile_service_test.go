package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateProfileMintsGoalIDs(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	profile := testProfile()
	profile.ID = primitive.NilObjectID
	profile.Goals[0].ID = ""
	profile.Goals[1].ID = ""

	created, err := svc.CreateProfile(context.Background(), profile)
	require.NoError(t, err)
	require.Len(t, created.Goals, 2)
	assert.NotEmpty(t, created.Goals[0].ID)
	assert.NotEmpty(t, created.Goals[1].ID)
	assert.NotEqual(t, created.Goals[0].ID, created.Goals[1].ID)
}

func TestCreateProfileKeepsProvidedGoalIDs(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	profile := testProfile()
	profile.ID = primitive.NilObjectID

	created, err := svc.CreateProfile(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, "goal-1", created.Goals[0].ID)
}

func TestCreateProfileValidation(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())
	ctx := context.Background()

	t.Run("empty name", func(t *testing.T) {
		profile := testProfile()
		profile.Name = ""
		_, err := svc.CreateProfile(ctx, profile)
		assert.ErrorIs(t, err, ErrProfileInvalid)
	})

	t.Run("unknown goal type", func(t *testing.T) {
		profile := testProfile()
		profile.Goals[0].Type = "get_swole"
		_, err := svc.CreateProfile(ctx, profile)
		assert.ErrorIs(t, err, ErrUnknownGoalType)
	})

	t.Run("unknown activity level", func(t *testing.T) {
		profile := testProfile()
		profile.ActivityLevel = "couch"
		_, err := svc.CreateProfile(ctx, profile)
		assert.ErrorIs(t, err, ErrUnknownEnumValue)
	})

	t.Run("non-positive goal priority", func(t *testing.T) {
		profile := testProfile()
		profile.Goals[0].Priority = 0
		_, err := svc.CreateProfile(ctx, profile)
		assert.ErrorIs(t, err, ErrProfileInvalid)
	})

	t.Run("bad schedule day", func(t *testing.T) {
		profile := testProfile()
		profile.Schedule = map[string]bool{"funday": true}
		_, err := svc.CreateProfile(ctx, profile)
		assert.ErrorIs(t, err, ErrProfileInvalid)
	})
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	_, err := svc.GetProfileByID(context.Background(), oid(42))
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateProfileRoundTrip(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)
	ctx := context.Background()

	profile := testProfile()
	_, err := repo.Create(ctx, profile)
	require.NoError(t, err)

	profile.WeightKG = 78
	updated, err := svc.UpdateProfile(ctx, profile)
	require.NoError(t, err)
	assert.Equal(t, float64(78), updated.WeightKG)
}

func TestUpdateProfileRequiresID(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	profile := testProfile()
	profile.ID = primitive.NilObjectID
	_, err := svc.UpdateProfile(context.Background(), profile)
	assert.Error(t, err)
}

func TestDeleteProfileNotFound(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	err := svc.DeleteProfile(context.Background(), oid(42))
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestListProfiles(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)
	ctx := context.Background()

	for _, name := range []string{"A", "B"} {
		p := testProfile()
		p.ID = primitive.NilObjectID
		p.Name = name
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	profiles, err := svc.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}
