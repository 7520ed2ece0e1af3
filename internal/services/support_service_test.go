package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/testhelpers"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

func TestSupportService_TicketLifecycle(t *testing.T) {
	db, svc, _ := setup(t)
	admin := testhelpers.CreateAdmin(t, db)
	user, _ := testhelpers.CreateTalent(t, db)

	ticket, err := svc.SupportService.CreateTicket(db, user.ID, &dto.CreateTicketRequest{
		Subject: "Payment", Message: "My payout is late",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusOpen, ticket.Status)
	assert.Equal(t, models.TicketPriorityMedium, ticket.Priority, "Приоритет по умолчанию MEDIUM")

	reply := "We are looking into it"
	high := models.TicketPriorityHigh
	resolved, err := svc.SupportService.UpdateTicket(db, admin.ID, ticket.ID, &dto.UpdateTicketRequest{
		Status: models.TicketStatusResolved, Priority: &high, AdminReply: &reply,
	})
	require.NoError(t, err)
	assert.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, models.TicketPriorityHigh, resolved.Priority)
	assert.Equal(t, reply, resolved.AdminReply)

	// Обратный переход разрешен и снимает resolved_at
	reopened, err := svc.SupportService.UpdateTicket(db, admin.ID, ticket.ID, &dto.UpdateTicketRequest{
		Status: models.TicketStatusOpen,
	})
	require.NoError(t, err)
	assert.Nil(t, reopened.ResolvedAt)
	assert.Equal(t, reply, reopened.AdminReply, "Ответ без изменений, если не передан")

	_, err = svc.SupportService.UpdateTicket(db, admin.ID, "00000000-0000-0000-0000-000000000000", &dto.UpdateTicketRequest{
		Status: models.TicketStatusClosed,
	})
	assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)

	mine, err := svc.SupportService.ListMyTickets(db, user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	open, err := svc.SupportService.ListTickets(db, &dto.TicketListQuery{Status: models.TicketStatusOpen}, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, open.Total)
}
