package i18n

// Message keys registered in the ko and en catalogs.
const (
	KeyDashboardTitle   = "dashboard.title"
	KeyDashboardWelcome = "dashboard.welcome"
	KeyRecentEvents     = "dashboard.recent_events"
	KeyQuickActions     = "dashboard.quick_actions"

	KeyColumnName         = "table.column.name"
	KeyColumnDate         = "table.column.date"
	KeyColumnParticipants = "table.column.participants"
	KeyColumnStatus       = "table.column.status"
	KeyTableLoading       = "table.loading"
	KeyTableEmpty         = "table.empty"
	KeyParticipantCount   = "table.participant_count"

	KeyStatusActive    = "status.active"
	KeyStatusPending   = "status.pending"
	KeyStatusCompleted = "status.completed"
	KeyStatusCancelled = "status.cancelled"

	KeyLoadFailedTitle = "toast.load_failed"

	KeyTileEventsTitle             = "tile.events.title"
	KeyTileEventsDescription       = "tile.events.description"
	KeyTileParticipantsTitle       = "tile.participants.title"
	KeyTileParticipantsDescription = "tile.participants.description"
	KeyTileLodgingTitle            = "tile.lodging.title"
	KeyTileLodgingDescription      = "tile.lodging.description"

	KeyActionNewEvent       = "action.new_event"
	KeyActionAddParticipant = "action.add_participant"
	KeyActionAssignRooms    = "action.assign_rooms"
)
