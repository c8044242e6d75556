package vo

import "github.com/joshuarp/idgen-api/internal/shared/uid"

// IssuedID carries an id both as a JSON number and as its decimal string for
// clients that parse numbers as 64-bit integers only.
type IssuedID struct {
	ID       uid.ID `json:"id"`
	IDString string `json:"id_str"`
}

func NewIssuedID(id uid.ID) IssuedID {
	return IssuedID{ID: id, IDString: id.String()}
}

type IssuedIDBatch struct {
	IDs   []uid.ID `json:"ids"`
	Count int      `json:"count"`
}
