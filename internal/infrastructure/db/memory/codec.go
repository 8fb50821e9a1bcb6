package memory

import (
	"encoding/json"
	"fmt"

	"github.com/interviewdesk/dashboard/internal/core/domain"
)

func decodeIdentity(raw []byte) (domain.Identity, error) {
	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrSessionCorrupt, err)
	}
	if err := identity.Validate(); err != nil {
		return domain.Identity{}, err
	}
	return identity, nil
}
