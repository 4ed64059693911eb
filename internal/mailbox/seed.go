package mailbox

// Seed returns the demo inbox. The slice is pre-sorted newest-first;
// callers rely on insertion order, so nothing here may reorder it.
// Each call returns a fresh copy so one view's flag changes never leak
// into another.
func Seed() []Record {
	return []Record{
		{
			ID:        "1",
			From:      "John Doe",
			FromEmail: "john.doe@acmecorp.com",
			Subject:   "RE: Acquisition of 20 million shares - Final Terms",
			Preview:   "Hi, I wanted to follow up on our discussion regarding the share acquisition...",
			Body: `Hi,

I wanted to follow up on our discussion regarding the share acquisition. After careful consideration with our board, we've decided to proceed with the purchase of 20 million shares at the agreed price point of $45.50 per share.

The total transaction value comes to $910 million. We'll need the following documents prepared:
- Share transfer agreement
- Board resolution
- Regulatory filings (SEC Form 4)
- Escrow arrangements

Our legal team will be in touch by end of week. Please confirm receipt and availability for a call on Thursday.

Best regards,
John Doe
Chief Investment Officer
ACME Corporation`,
			Date:    "10:34 AM",
			Read:    false,
			Starred: true,
			Labels:  []string{"Important", "Finance"},
		},
		{
			ID:        "2",
			From:      "Sarah Chen",
			FromEmail: "sarah.chen@techstart.io",
			Subject:   "Q4 Product Roadmap - Review Required",
			Preview:   "Team, please review the attached Q4 roadmap before our Friday sync...",
			Body: `Team,

Please review the attached Q4 roadmap before our Friday sync. Key highlights:

1. Mobile app v2.0 launch - October 15th
2. AI features rollout - November 1st
3. Enterprise dashboard - December 1st

We need sign-off from all department heads by Wednesday EOD. Let me know if you have any concerns or resource constraints.

The engineering estimates are tight but achievable with current headcount. Marketing will need an additional $50k budget for the launch campaign.

Thanks,
Sarah`,
			Date:   "9:15 AM",
			Read:   false,
			Labels: []string{"Work"},
		},
		{
			ID:        "3",
			From:      "LinkedIn",
			FromEmail: "notifications@linkedin.com",
			Subject:   "You have 5 new connection requests",
			Preview:   "Michael Scott and 4 others want to connect with you on LinkedIn...",
			Body: `You have new connection requests waiting for you.

Michael Scott - Regional Manager at Dunder Mifflin
wants to connect.

Jim Halpert - Sales Representative at Dunder Mifflin
wants to connect.

And 3 more people want to connect with you.

Log in to LinkedIn to view and respond to these requests.`,
			Date:   "8:42 AM",
			Read:   true,
			Labels: []string{"Social"},
		},
		{
			ID:        "4",
			From:      "Amazon",
			FromEmail: "ship-confirm@amazon.com",
			Subject:   "Your order has shipped!",
			Preview:   "Your package is on its way. Track your delivery...",
			Body: `Hello,

Great news! Your order #112-4567890-1234567 has shipped.

Items:
- Apple AirPods Pro (2nd Generation) - $249.00
- USB-C Cable 3-Pack - $12.99

Estimated delivery: Tomorrow by 9 PM

Track your package: https://amazon.com/tracking/...

Thank you for shopping with Amazon!`,
			Date:   "Yesterday",
			Read:   true,
			Labels: []string{"Shopping"},
		},
		{
			ID:        "5",
			From:      "David Park",
			FromEmail: "david.park@investco.com",
			Subject:   "Investment Committee Meeting - Agenda",
			Preview:   "The IC meeting is scheduled for Monday at 2pm. Agenda items include...",
			Body: `Hi all,

The Investment Committee meeting is scheduled for Monday at 2pm EST. Here's the agenda:

1. Portfolio performance review (Q3)
2. New investment proposals
   - TechCorp Series B ($15M)
   - GreenEnergy seed round ($5M)
3. Risk assessment updates
4. Regulatory compliance check

Please come prepared with your sector analyses. Meeting will be in Conference Room A with Zoom link for remote attendees.

David Park
Managing Director`,
			Date:    "Yesterday",
			Read:    true,
			Starred: true,
			Labels:  []string{"Finance", "Meetings"},
		},
		{
			ID:        "6",
			From:      "Mom",
			FromEmail: "mom@gmail.com",
			Subject:   "Dad's 50th Birthday Party!!",
			Preview:   "Hi sweetie! Don't forget about dad's surprise party next Saturday...",
			Body: `Hi sweetie!

Don't forget about dad's surprise party next Saturday at 6pm! We're having it at Uncle Bob's house.

Can you please bring:
- The cake (I ordered it at Sweet Delights, just pick it up)
- Paper plates and napkins
- Your famous guacamole

Also, your sister is flying in Friday night. Can you pick her up from the airport? Flight lands at 8:45pm.

Love you!
Mom

P.S. - Remember, it's a SURPRISE! Don't mention it to dad!`,
			Date:    "Mar 15",
			Read:    true,
			Starred: true,
			Labels:  []string{"Family"},
		},
		{
			ID:        "7",
			From:      "GitHub",
			FromEmail: "noreply@github.com",
			Subject:   "[repo] Pull request #234: Fix authentication bug",
			Preview:   "alexdev opened a pull request in your-project/main...",
			Body: `alexdev wants to merge 3 commits into main from fix-auth-bug

This PR fixes the authentication timeout issue reported in #233.

Changes:
- Updated token refresh logic
- Added retry mechanism for failed auth attempts
- Improved error messages

Files changed: 4
Additions: 156
Deletions: 42

View this pull request on GitHub: https://github.com/...`,
			Date:   "Mar 14",
			Read:   true,
			Labels: []string{"GitHub"},
		},
	}
}
