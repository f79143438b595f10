package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Korean

	message.SetString(lang, KeyDashboardTitle, "대시보드")
	message.SetString(lang, KeyDashboardWelcome, "SympoHub 행사 관리 플랫폼에 오신 것을 환영합니다")
	message.SetString(lang, KeyRecentEvents, "최근 행사")
	message.SetString(lang, KeyQuickActions, "빠른 작업")

	message.SetString(lang, KeyColumnName, "행사명")
	message.SetString(lang, KeyColumnDate, "일자")
	message.SetString(lang, KeyColumnParticipants, "참가자")
	message.SetString(lang, KeyColumnStatus, "상태")
	message.SetString(lang, KeyTableLoading, "데이터를 불러오는 중...")
	message.SetString(lang, KeyTableEmpty, "등록된 행사가 없습니다.")
	message.SetString(lang, KeyParticipantCount, "%s명")

	message.SetString(lang, KeyStatusActive, "진행중")
	message.SetString(lang, KeyStatusPending, "대기")
	message.SetString(lang, KeyStatusCompleted, "완료")
	message.SetString(lang, KeyStatusCancelled, "취소")

	message.SetString(lang, KeyLoadFailedTitle, "데이터 로드 실패")

	message.SetString(lang, KeyTileEventsTitle, "전체 행사")
	message.SetString(lang, KeyTileEventsDescription, "이번 달 진행 중")
	message.SetString(lang, KeyTileParticipantsTitle, "총 참가자")
	message.SetString(lang, KeyTileParticipantsDescription, "전체 등록 인원")
	message.SetString(lang, KeyTileLodgingTitle, "숙박 이용률")
	message.SetString(lang, KeyTileLodgingDescription, "객실 배정 완료")

	message.SetString(lang, KeyActionNewEvent, "새 행사 등록")
	message.SetString(lang, KeyActionAddParticipant, "참가자 추가")
	message.SetString(lang, KeyActionAssignRooms, "객실 배정")
}
