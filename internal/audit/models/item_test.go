package models_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"hsse/internal/audit/models"
	id "hsse/pkg/domain"
)

type ItemSuite struct {
	suite.Suite
	item *models.Item
}

func TestItemSuite(t *testing.T) {
	suite.Run(t, new(ItemSuite))
}

func (s *ItemSuite) SetupTest() {
	item, err := models.NewItem(models.ItemInput{
		Description: "Emergency lighting functional",
		Type:        models.ItemTypeYesNo,
		Required:    true,
		SortOrder:   3,
		MaxPoints:   intPtr(4),
	}, fixedNow)
	s.Require().NoError(err)
	s.item = item
}

func (s *ItemSuite) TestConstruction() {
	s.Run("rejects empty description", func() {
		_, err := models.NewItem(models.ItemInput{Type: models.ItemTypeText}, fixedNow)
		s.True(models.IsInvariantViolation(err))
	})
	s.Run("rejects negative max points", func() {
		_, err := models.NewItem(models.ItemInput{Description: "x", Type: models.ItemTypeText, MaxPoints: intPtr(-1)}, fixedNow)
		s.True(models.IsInvariantViolation(err))
	})
	s.Run("starts not started", func() {
		s.Equal(models.ItemStatusNotStarted, s.item.Status())
	})
}

func (s *ItemSuite) TestAssessment() {
	s.Run("start then complete compliant", func() {
		s.Require().NoError(s.item.StartAssessment(fixedNow))
		s.Equal(models.ItemStatusInProgress, s.item.Status())
		s.True(models.IsIllegalStateTransition(s.item.StartAssessment(fixedNow)))

		s.Require().NoError(s.item.CompleteAssessment(models.Assessment{
			ActualResult: "All lamps lit",
			IsCompliant:  true,
			AssessedBy:   "kim",
			ActualPoints: intPtr(3),
		}, fixedNow))
		s.Equal(models.ItemStatusCompleted, s.item.Status())
		s.Equal("kim", s.item.AssessedBy())
		s.Require().NotNil(s.item.ScorePercentage())
		s.InDelta(75.0, *s.item.ScorePercentage(), 0.0001)
	})

	s.Run("non compliant then corrective action requires follow up", func() {
		s.SetupTest()
		s.Require().NoError(s.item.CompleteAssessment(models.Assessment{IsCompliant: false, AssessedBy: "kim"}, fixedNow))
		s.Equal(models.ItemStatusNonCompliant, s.item.Status())

		due := fixedNow.Add(-time.Hour)
		owner := id.UserID(uuid.New())
		s.Require().NoError(s.item.AddCorrectiveAction("Replace batteries", &due, &owner, fixedNow))
		s.Equal(models.ItemStatusRequiresFollowUp, s.item.Status())
		s.True(s.item.IsOverdue(fixedNow))
	})

	s.Run("corrective action then reset restores not started", func() {
		s.SetupTest()
		s.Require().NoError(s.item.CompleteAssessment(models.Assessment{IsCompliant: false, AssessedBy: "kim"}, fixedNow))
		due := fixedNow.Add(time.Hour)
		s.Require().NoError(s.item.AddCorrectiveAction("Replace batteries", &due, nil, fixedNow))
		s.item.Reset(fixedNow)

		s.Equal(models.ItemStatusNotStarted, s.item.Status())
		s.Empty(s.item.CorrectiveAction())
		s.Nil(s.item.CorrectiveActionDue())
		s.Nil(s.item.ResponsiblePersonID())
		s.Nil(s.item.IsCompliant())
		s.Empty(s.item.AssessedBy())
	})

	s.Run("empty corrective text keeps non compliant", func() {
		s.SetupTest()
		s.Require().NoError(s.item.CompleteAssessment(models.Assessment{IsCompliant: false, AssessedBy: "kim"}, fixedNow))
		s.Require().NoError(s.item.AddCorrectiveAction("", nil, nil, fixedNow))
		s.Equal(models.ItemStatusNonCompliant, s.item.Status())
	})

	s.Run("corrective action requires non compliant", func() {
		s.SetupTest()
		err := s.item.AddCorrectiveAction("x", nil, nil, fixedNow)
		s.True(models.IsIllegalStateTransition(err))
	})

	s.Run("assessor required", func() {
		s.SetupTest()
		err := s.item.CompleteAssessment(models.Assessment{IsCompliant: true}, fixedNow)
		s.True(models.IsInvariantViolation(err))
		s.Equal(models.ItemStatusNotStarted, s.item.Status())
	})

	s.Run("not applicable from any state", func() {
		s.SetupTest()
		s.Require().NoError(s.item.CompleteAssessment(models.Assessment{IsCompliant: true, AssessedBy: "kim"}, fixedNow))
		s.item.MarkAsNotApplicable("area decommissioned", "lee", fixedNow)
		s.Equal(models.ItemStatusNotApplicable, s.item.Status())
		s.Equal("Not Applicable: area decommissioned", s.item.ActualResult())
		s.Nil(s.item.IsCompliant())
	})
}

func (s *ItemSuite) TestUpdateScore() {
	s.Run("requires assessment", func() {
		s.True(models.IsIllegalStateTransition(s.item.UpdateScore(1, fixedNow)))
	})
	s.Run("bounded by max points", func() {
		s.Require().NoError(s.item.CompleteAssessment(models.Assessment{IsCompliant: true, AssessedBy: "kim"}, fixedNow))
		s.True(models.IsInvariantViolation(s.item.UpdateScore(5, fixedNow)))
		s.True(models.IsInvariantViolation(s.item.UpdateScore(-1, fixedNow)))
		s.Require().NoError(s.item.UpdateScore(4, fixedNow))
		s.InDelta(100.0, *s.item.ScorePercentage(), 0.0001)
	})
}

func (s *ItemSuite) TestScorePercentageUndefined() {
	item, err := models.NewItem(models.ItemInput{Description: "x", Type: models.ItemTypeText, MaxPoints: intPtr(0)}, fixedNow)
	s.Require().NoError(err)
	s.Require().NoError(item.CompleteAssessment(models.Assessment{IsCompliant: true, AssessedBy: "kim", ActualPoints: intPtr(0)}, fixedNow))
	s.Nil(item.ScorePercentage())
}
