package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, KeyDashboardTitle, "Dashboard")
	message.SetString(lang, KeyDashboardWelcome, "Welcome to the SympoHub event management platform")
	message.SetString(lang, KeyRecentEvents, "Recent events")
	message.SetString(lang, KeyQuickActions, "Quick actions")

	message.SetString(lang, KeyColumnName, "Event")
	message.SetString(lang, KeyColumnDate, "Date")
	message.SetString(lang, KeyColumnParticipants, "Participants")
	message.SetString(lang, KeyColumnStatus, "Status")
	message.SetString(lang, KeyTableLoading, "Loading data...")
	message.SetString(lang, KeyTableEmpty, "No events registered.")
	message.SetString(lang, KeyParticipantCount, "%s participants")

	message.SetString(lang, KeyStatusActive, "Active")
	message.SetString(lang, KeyStatusPending, "Pending")
	message.SetString(lang, KeyStatusCompleted, "Completed")
	message.SetString(lang, KeyStatusCancelled, "Cancelled")

	message.SetString(lang, KeyLoadFailedTitle, "Failed to load data")

	message.SetString(lang, KeyTileEventsTitle, "Total events")
	message.SetString(lang, KeyTileEventsDescription, "Running this month")
	message.SetString(lang, KeyTileParticipantsTitle, "Total participants")
	message.SetString(lang, KeyTileParticipantsDescription, "All registrations")
	message.SetString(lang, KeyTileLodgingTitle, "Lodging utilization")
	message.SetString(lang, KeyTileLodgingDescription, "Rooms assigned")

	message.SetString(lang, KeyActionNewEvent, "New event")
	message.SetString(lang, KeyActionAddParticipant, "Add participant")
	message.SetString(lang, KeyActionAssignRooms, "Assign rooms")
}
