package enum

import "encoding/json"

// DraftStatus represents the lifecycle state of an order draft
type DraftStatus int

const (
	DraftStatusDraft     DraftStatus = 0
	DraftStatusSubmitted DraftStatus = 1
	DraftStatusCompleted DraftStatus = 2
)

func (s DraftStatus) String() string {
	return [...]string{"draft", "submitted", "completed"}[s]
}

// Editable reports whether quantity/discount/voucher edits are still
// accepted. Completed orders are read-only.
func (s DraftStatus) Editable() bool {
	return s != DraftStatusCompleted
}

func (s DraftStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *DraftStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = DraftStatus(i)
		return nil
	}
	switch str {
	case "draft":
		*s = DraftStatusDraft
	case "submitted":
		*s = DraftStatusSubmitted
	case "completed":
		*s = DraftStatusCompleted
	}
	return nil
}
