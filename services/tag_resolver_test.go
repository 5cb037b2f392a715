package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"articles_api/database"
	"articles_api/models"
)

func TestResolveTags(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, database.NewBootstrapper(db).EnsureSchema(ctx))

	stored := []models.Tag{{Name: "go"}, {Name: "it's"}}
	require.NoError(t, db.Create(&stored).Error)

	res, err := ResolveTags(ctx, db, []string{"new", "it's", "Go", "go"})
	require.NoError(t, err)

	require.Equal(t, []string{"it's", "go"}, res.ExistingNames)
	require.Equal(t, []uint{stored[1].ID, stored[0].ID}, res.ExistingIDs)
	require.Equal(t, []string{"new", "Go"}, res.NewNames)
}

func TestResolveTags_QuoteInName(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, database.NewBootstrapper(db).EnsureSchema(ctx))
	require.NoError(t, db.Create(&models.Tag{Name: "go"}).Error)

	res, err := ResolveTags(ctx, db, []string{`x' OR '1'='1`, `"quoted"`})
	require.NoError(t, err)
	require.Empty(t, res.ExistingIDs)
	require.Equal(t, []string{`x' OR '1'='1`, `"quoted"`}, res.NewNames)
}

func TestResolveTags_NoNames(t *testing.T) {
	res, err := ResolveTags(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, TagResolution{}, res)
}
