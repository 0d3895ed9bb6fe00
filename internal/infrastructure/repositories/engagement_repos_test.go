package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"estate-hub.backend/internal/domain/entities"
	domainerrors "estate-hub.backend/internal/domain/errors"
)

func TestEnquiryRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	createEnquiryTable(t, db)
	repo := NewEnquiryRepository(db)
	ctx := context.Background()

	e := &entities.Enquiry{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		Name:       "Kiran",
		Email:      "kiran@example.com",
		Phone:      "9876500010",
		Message:    "Is the flat still available?",
		Status:     entities.EnquiryStatusNew,
	}
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, entities.EnquiryStatusNew, got.Status)
	require.False(t, got.HandledBy.Valid)

	staffID := uuid.New().String()
	require.NoError(t, repo.UpdateStatus(ctx, e.ID, entities.EnquiryStatusContacted, staffID))

	got, err = repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, entities.EnquiryStatusContacted, got.Status)
	require.Equal(t, staffID, got.HandledBy.String)

	contacted, total, err := repo.List(ctx, entities.EnquiryStatusContacted, 20, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, contacted, 1)

	_, total, err = repo.List(ctx, entities.EnquiryStatusClosed, 20, 0)
	require.NoError(t, err)
	require.EqualValues(t, 0, total)

	all, total, err := repo.List(ctx, "", 20, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, all, 1)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entities.EnquiryStatusClosed, ""), domainerrors.ErrNotFound)
}

func TestReviewRepository_VisibilityAndUniqueness(t *testing.T) {
	db := newTestDB(t)
	createReviewTable(t, db)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	propertyID := uuid.New()
	userID := uuid.New()
	r1 := &entities.Review{
		ID:         uuid.New(),
		PropertyID: propertyID,
		UserID:     userID,
		UserName:   "Meera",
		Rating:     4,
		Comment:    "Lovely neighbourhood",
		Status:     entities.ReviewStatusVisible,
	}
	r2 := &entities.Review{
		ID:         uuid.New(),
		PropertyID: propertyID,
		UserID:     uuid.New(),
		UserName:   "Dev",
		Rating:     2,
		Comment:    "Parking is tight",
		Status:     entities.ReviewStatusVisible,
	}
	require.NoError(t, repo.Create(ctx, r1))
	require.NoError(t, repo.Create(ctx, r2))

	mine, err := repo.GetByPropertyAndUser(ctx, propertyID, userID)
	require.NoError(t, err)
	require.Equal(t, r1.ID, mine.ID)

	_, err = repo.GetByPropertyAndUser(ctx, propertyID, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.NoError(t, repo.UpdateStatus(ctx, r2.ID, entities.ReviewStatusHidden))

	visible, err := repo.ListByProperty(ctx, propertyID, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	require.Equal(t, r1.ID, visible[0].ID)

	all, err := repo.ListByProperty(ctx, propertyID, true)
	require.NoError(t, err)
	require.Len(t, all, 2)

	require.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entities.ReviewStatusHidden), domainerrors.ErrNotFound)
}

func TestAppointmentRepository_LifecycleAndExpiry(t *testing.T) {
	db := newTestDB(t)
	createAppointmentTable(t, db)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	now := time.Now()
	past := &entities.Appointment{
		ID:          uuid.New(),
		PropertyID:  uuid.New(),
		UserID:      userID,
		Name:        "Kiran",
		Phone:       "9876500010",
		ScheduledAt: now.Add(-2 * time.Hour),
		Status:      entities.AppointmentStatusPending,
	}
	upcoming := &entities.Appointment{
		ID:          uuid.New(),
		PropertyID:  uuid.New(),
		UserID:      userID,
		Name:        "Kiran",
		Phone:       "9876500010",
		ScheduledAt: now.Add(24 * time.Hour),
		Status:      entities.AppointmentStatusPending,
		Notes:       null.StringFrom("Prefers morning slot"),
	}
	require.NoError(t, repo.Create(ctx, past))
	require.NoError(t, repo.Create(ctx, upcoming))

	mine, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, past.ID, mine[0].ID) // soonest first

	staffID := uuid.New()
	require.NoError(t, repo.UpdateStatus(ctx, upcoming.ID, entities.AppointmentStatusConfirmed, staffID, "Confirmed on call"))

	got, err := repo.GetByID(ctx, upcoming.ID)
	require.NoError(t, err)
	require.Equal(t, entities.AppointmentStatusConfirmed, got.Status)
	require.Equal(t, staffID.String(), got.StaffID.String)
	require.Equal(t, "Confirmed on call", got.Notes.String)

	expired, err := repo.ExpirePastPending(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, expired)

	got, err = repo.GetByID(ctx, past.ID)
	require.NoError(t, err)
	require.Equal(t, entities.AppointmentStatusExpired, got.Status)

	// Confirmed appointments are never swept.
	expired, err = repo.ExpirePastPending(ctx, now.Add(48*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 0, expired)

	expiredList, total, err := repo.List(ctx, entities.AppointmentStatusExpired, 20, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, expiredList, 1)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entities.AppointmentStatusCancelled, uuid.Nil, ""), domainerrors.ErrNotFound)
}

func TestTitleSearchRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	createTitleSearchTable(t, db)
	repo := NewTitleSearchRepository(db)
	ctx := context.Background()

	req := &entities.TitleSearchRequest{
		ID:              uuid.New(),
		PropertyAddress: "Plot 17, Baner Road",
		City:            "Pune",
		SurveyNumber:    null.StringFrom("SN-104/2B"),
		RequesterName:   "Kiran",
		RequesterEmail:  "kiran@example.com",
		RequesterPhone:  "9876500010",
		Documents:       []string{"sale_deed.pdf", "7-12_extract.pdf"},
		Status:          entities.TitleSearchReceived,
	}
	require.NoError(t, repo.Create(ctx, req))

	got, err := repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	require.Equal(t, "SN-104/2B", got.SurveyNumber.String)
	require.Equal(t, []string{"sale_deed.pdf", "7-12_extract.pdf"}, got.Documents)
	require.Equal(t, entities.TitleSearchReceived, got.Status)

	require.NoError(t, repo.UpdateStatus(ctx, req.ID, entities.TitleSearchCompleted, "Clear 30-year chain"))

	got, err = repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	require.Equal(t, entities.TitleSearchCompleted, got.Status)
	require.Equal(t, "Clear 30-year chain", got.ResultNotes.String)

	completed, total, err := repo.List(ctx, entities.TitleSearchCompleted, 20, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, completed, 1)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entities.TitleSearchRejected, ""), domainerrors.ErrNotFound)
}
