//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/stallsurvey/internal/adapters/database"
	"github.com/zatekoja/stallsurvey/internal/application/services"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/providers"
	apperrors "github.com/zatekoja/stallsurvey/pkg/errors"
)

func TestSurveyFlow_PostgresIntegration(t *testing.T) {
	client := requirePostgres(t)
	ctx := context.Background()
	clock := providers.FixedClock{At: time.Date(2026, 5, 14, 15, 0, 0, 0, time.UTC)}

	questionRepo := database.NewQuestionAdapter(client)
	stallRepo := database.NewStallAdapter(client)
	responseRepo := database.NewResponseAdapter(client)
	userRepo := database.NewUserAdapter(client)

	users := services.NewUserService(userRepo, clock)
	stalls := services.NewStallService(stallRepo, nil, clock)
	questions := services.NewQuestionService(questionRepo, nil, stallRepo, nil, clock)
	survey := services.NewSurveyService(questionRepo, responseRepo, stallRepo, nil, clock)
	dashboard := services.NewDashboardService(questionRepo, stallRepo, responseRepo, userRepo, nil, clock, 0, nil)

	_, err := users.Register(ctx, services.UserProfile{ID: "owner-1", Email: "owner@example.com", Name: "Owner", Role: entities.UserRoleShop})
	require.NoError(t, err)
	_, err = users.Register(ctx, services.UserProfile{ID: "visitor-1", Email: "v@example.com", Name: "Visitor", Role: entities.UserRoleUser})
	require.NoError(t, err)

	_, err = stalls.Register(ctx, "owner-1", services.RegisterStallInput{StallID: "Chai_Corner", Name: "Chai Corner"})
	require.NoError(t, err)
	_, err = stalls.Register(ctx, "owner-1", services.RegisterStallInput{StallID: "chai_corner", Name: "Again"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))

	global, err := questions.Create(ctx, services.CreateQuestionInput{
		Text: "Rate the venue", Options: []string{"Good", "Bad"}, Scope: entities.QuestionScopeGlobal,
	})
	require.NoError(t, err)
	specific, err := questions.Create(ctx, services.CreateQuestionInput{
		Text: "Favourite chai?", Options: []string{"Masala", "Ginger", "Plain"},
		Scope: entities.QuestionScopeSpecific, TargetStalls: []string{"CHAI_CORNER"},
	})
	require.NoError(t, err)

	eligible, err := survey.EligibleQuestions(ctx, "visitor-1", "chai_corner")
	require.NoError(t, err)
	ids := make([]string, 0, len(eligible))
	for _, q := range eligible {
		ids = append(ids, q.ID)
	}
	assert.ElementsMatch(t, []string{global.ID, specific.ID}, ids)

	eligible, err = survey.EligibleQuestions(ctx, "visitor-1", "")
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, global.ID, eligible[0].ID)

	_, err = survey.Submit(ctx, services.SubmitResponseInput{UserID: "visitor-1", QuestionID: specific.ID, StallID: "Chai_Corner", Answer: "Ginger"})
	require.NoError(t, err)
	_, err = survey.Submit(ctx, services.SubmitResponseInput{UserID: "visitor-1", QuestionID: specific.ID, StallID: "chai_corner", Answer: "Plain"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))

	eligible, err = survey.EligibleQuestions(ctx, "visitor-1", "chai_corner")
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, global.ID, eligible[0].ID)

	_, err = survey.Submit(ctx, services.SubmitResponseInput{UserID: "visitor-1", QuestionID: global.ID, Answer: "Good"})
	require.NoError(t, err)

	admin, err := dashboard.AdminStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, admin.TotalResponses)
	assert.Equal(t, 1, admin.ResponsesWithoutStall)
	assert.Equal(t, 1, admin.ResponseCountByStall["chai_corner"])

	owner, err := dashboard.OwnerStatistics(ctx, "owner-1")
	require.NoError(t, err)
	assert.True(t, owner.Scoped)
	assert.Equal(t, 1, owner.TotalResponses)
}
