package types

import "strings"

// Channel identifies where an intake payload came from.
type Channel string

const (
	ChannelVapi     Channel = "vapi"
	ChannelInternal Channel = "internal"
	ChannelWebform  Channel = "webform"
)

// PainCategory is the closed set of operational friction categories.
type PainCategory string

const (
	CategoryOnboarding PainCategory = "onboarding"
	CategoryApprovals  PainCategory = "approvals"
	CategoryReporting  PainCategory = "reporting"
	CategoryComms      PainCategory = "comms"
	CategoryFinanceOps PainCategory = "finance_ops"
	CategorySalesOps   PainCategory = "sales_ops"
	CategoryClientOps  PainCategory = "client_ops"
	CategoryAccessMgmt PainCategory = "access_mgmt"
	CategoryOther      PainCategory = "other"
)

var painCategories = map[PainCategory]struct{}{
	CategoryOnboarding: {},
	CategoryApprovals:  {},
	CategoryReporting:  {},
	CategoryComms:      {},
	CategoryFinanceOps: {},
	CategorySalesOps:   {},
	CategoryClientOps:  {},
	CategoryAccessMgmt: {},
	CategoryOther:      {},
}

// ParsePainCategory coerces an arbitrary string to a member of the
// category set, falling back to CategoryOther.
func ParsePainCategory(s string) PainCategory {
	c := PainCategory(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := painCategories[c]; ok {
		return c
	}
	return CategoryOther
}

// AutomationType classifies the recommended remediation approach.
type AutomationType string

const (
	AutomationLowCode        AutomationType = "low_code"
	AutomationAPIIntegration AutomationType = "api_integration"
	AutomationAIAssist       AutomationType = "ai_assist"
	AutomationInternalTool   AutomationType = "internal_tool"
	AutomationProcessChange  AutomationType = "process_change"
)
