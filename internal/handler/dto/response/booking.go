package response

import (
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/catalog"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/wizard"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"
)

// WizardResponse is the booking form as the front end renders it.
type WizardResponse struct {
	SessionID      string                    `json:"session_id"`
	Step           int                       `json:"step"`
	CanAdvance     bool                      `json:"can_advance"`
	Service        *queries.ServiceView      `json:"service,omitempty"`
	MasterChoice   string                    `json:"master_choice,omitempty"`
	Master         *queries.PublicMasterView `json:"master,omitempty"`
	Date           string                    `json:"date,omitempty"`
	Time           string                    `json:"time,omitempty"`
	Contact        wizard.Contact            `json:"contact"`
	Promo          *wizard.AppliedPromo      `json:"promo,omitempty"`
	BasePrice      int64                     `json:"base_price"`
	Total          int64                     `json:"total"`
	TotalLabel     string                    `json:"total_label"`
	Completed      bool                      `json:"completed"`
	BookingID      string                    `json:"booking_id,omitempty"`
	BookingShortID string                    `json:"booking_short_id,omitempty"`
	LastError      string                    `json:"last_error,omitempty"`
	Source         queries.Source            `json:"source"`
}

func FromWizardView(v *commands.WizardView) *WizardResponse {
	st := v.State
	res := &WizardResponse{
		SessionID:      st.ID.String(),
		Step:           int(st.Step),
		CanAdvance:     v.CanAdvance,
		Service:        v.Service,
		MasterChoice:   st.MasterChoice,
		Master:         v.Master,
		Date:           st.DateLabel,
		Time:           st.TimeLabel,
		Contact:        st.Contact,
		Promo:          st.Promo,
		BasePrice:      v.BasePrice,
		Total:          v.Total,
		TotalLabel:     catalog.PriceLabel(v.Total),
		Completed:      st.IsCompleted(),
		BookingShortID: v.ShortID,
		LastError:      st.LastError,
		Source:         v.Source,
	}
	if st.BookingID != nil {
		res.BookingID = st.BookingID.String()
	}
	return res
}
