package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile
// time, catching missing methods before runtime.

import (
	"github.com/avolkov/outreach/internal/database/campaigns"
	"github.com/avolkov/outreach/internal/database/contacts"
	"github.com/avolkov/outreach/internal/http"
	"github.com/avolkov/outreach/internal/importers"
)

// ContactStore implementations
var _ http.ContactStore = (*contacts.Repository)(nil)
var _ importers.ContactStore = (*contacts.Repository)(nil)

// CampaignStore implementations
var _ http.CampaignStore = (*campaigns.Repository)(nil)
