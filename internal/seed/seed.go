// Package seed holds demo interview fixtures. They run through the
// normal ingestion path so extraction and scoring behave exactly as
// they would for live intakes.
package seed

import "friction-finder-go/internal/types"

// DemoIntakes returns a small cross-team set of interview intakes
// with free-text transcripts only; pain points are mined by the
// extraction engine.
func DemoIntakes() []types.CanonicalIntake {
	return []types.CanonicalIntake{
		{
			Channel: types.ChannelInternal,
			Respondent: types.CanonicalRespondent{
				Name: "Priya Nair", Email: "priya.nair@example.com",
				Team: "People", Role: "People Ops Manager", Consent: true,
			},
			Transcript: "New joiner onboarding checklists are tracked manually in Google Sheets and ServiceNow daily, " +
				"and each new joiner setup takes 45 minutes for 3 people across HR, IT and payroll tools. " +
				"We chase access approvals in Okta by email every single time.",
			CallSummary: "Manual onboarding tracking across HR and IT systems.",
		},
		{
			Channel: types.ChannelInternal,
			Respondent: types.CanonicalRespondent{
				Name: "Marcus Webb", Email: "marcus.webb@example.com",
				Team: "Finance", Role: "Finance Ops Analyst", Consent: true,
			},
			Transcript: "Invoice approval chasing happens around 18 times per week in NetSuite and Outlook, " +
				"30 minutes per approval request for 2 people, because the email threads are fragmented. " +
				"We also reconcile expense spreadsheets in Excel weekly which takes 2 hours.",
			CallSummary: "Invoice approvals and expense reconciliation friction.",
		},
		{
			Channel: types.ChannelVapi,
			Respondent: types.CanonicalRespondent{
				Name: "Sofia Reyes", Email: "sofia.reyes@example.com",
				Team: "Client Services", Role: "Delivery Lead", Consent: true,
			},
			Transcript: "We manually compile weekly status reports in Jira and Excel 8 times per week, " +
				"it takes 50 minutes each run for 4 people. " +
				"Client QBR decks need copy paste from three dashboards every month.",
			CallSummary: "Weekly status report consolidation for client delivery.",
		},
		{
			Channel: types.ChannelInternal,
			Respondent: types.CanonicalRespondent{
				Name: "Dan Kowalski", Email: "dan.kowalski@example.com",
				Team: "Commercial", Role: "Sales Ops Manager", Consent: false,
			},
			Transcript: "Quote and proposal data is copied between Salesforce and Excel 10 times per week, " +
				"20 minutes each time for the whole team, and CRM pipeline status updates lag by days.",
			CallSummary: "Manual quote handling between CRM and spreadsheets.",
		},
		{
			Channel: types.ChannelInternal,
			Respondent: types.CanonicalRespondent{
				Name: "Aisha Bello", Email: "aisha.bello@example.com",
				Team: "Engineering", Role: "Engineering Manager", Consent: true,
			},
			Transcript: "Access permission requests in Jira and Okta wait for manual approval, " +
				"roughly 12 times per week at 15 minutes each, affecting 6 engineers. " +
				"Security review handoffs between Slack threads get lost constantly.",
			CallSummary: "Access management approval delays for engineers.",
		},
	}
}
