package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boco.agency/internal/content"
	"boco.agency/internal/models"
)

func TestProjectServiceGetAll(t *testing.T) {
	svc := NewProjectService(fullSource(), testAssets(t))

	projects, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "P1", projects[0].Title)
	assert.Equal(t, "https://cms.example.com/a.png", projects[0].Images[0].URL)
}

func TestProjectServiceGetAllEmpty(t *testing.T) {
	src := fullSource()
	src.projects = nil
	projects, err := NewProjectService(src, testAssets(t)).GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestProjectServiceGetAllPropagatesFailure(t *testing.T) {
	src := fullSource()
	src.projErr = transportErr
	_, err := NewProjectService(src, testAssets(t)).GetAll(context.Background())
	require.Error(t, err)
	assert.True(t, content.IsTransport(err))
}

func TestProjectServiceGetByIndex(t *testing.T) {
	svc := NewProjectService(fullSource(), testAssets(t))

	p, err := svc.GetByIndex(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "P2", p.Title)

	_, err = svc.GetByIndex(context.Background(), 2)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectServiceStep(t *testing.T) {
	svc := NewProjectService(fullSource(), testAssets(t))
	ctx := context.Background()

	pos, p, err := svc.Step(ctx, 0, DirectionNext)
	require.NoError(t, err)
	assert.Equal(t, models.CarouselPosition{Index: 1, Count: 2, Previous: 0, Next: 0, Controls: true}, pos)
	assert.Equal(t, "P2", p.Title)

	pos, p, err = svc.Step(ctx, 1, DirectionNext)
	require.NoError(t, err)
	assert.Equal(t, 0, pos.Index)
	assert.Equal(t, "P1", p.Title)

	pos, _, err = svc.Step(ctx, 9, DirectionPrevious)
	require.NoError(t, err)
	assert.Equal(t, 1, pos.Index, "out of range index rewinds to 0 before stepping")
}

func TestProjectServiceStepWithoutProjects(t *testing.T) {
	src := fullSource()
	src.projects = nil
	pos, p, err := NewProjectService(src, testAssets(t)).Step(context.Background(), 0, DirectionNext)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.False(t, pos.Controls)
}
