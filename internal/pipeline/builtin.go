package pipeline

// BuiltinTasks returns the fixed six-step branding sequence. Each prompt
// textually references the earlier steps it must stay consistent with; that
// is a content-level contract carried by the bounded context window, not
// something the runner enforces.
func BuiltinTasks() []TaskSpec {
	return []TaskSpec{
		{
			Ordinal: 1,
			Title:   "Strategic positioning",
			Prompt: "STEP 1 — STRATEGIC POSITIONING\n" +
				"Define ONE clear positioning for mahmoudnasr.io.\n" +
				"Deliver:\n" +
				"- Ideal client profile (who this is for AND who it is NOT for)\n" +
				"- One core positioning statement\n" +
				"- Key founder pain points and risks\n" +
				"- Differentiation logic (why Mahmoud vs alternatives)",
			ExpectedOutput: "A decisive positioning document.",
			MaxWords:       600,
		},
		{
			Ordinal: 2,
			Title:   "Advisory framework & offers",
			Prompt: "STEP 2 — ADVISORY FRAMEWORK & OFFERS\n" +
				"Design a simple advisory framework and 2–3 offers:\n" +
				"1) One-off call\n" +
				"2) Short structured sprint\n" +
				"3) Ongoing retainer\n" +
				"Include boundaries and pricing logic.\n" +
				"Must align with Step 1 positioning.",
			ExpectedOutput: "Framework + offers + boundaries + pricing logic.",
			MaxWords:       800,
		},
		{
			Ordinal: 3,
			Title:   "Website structure & UX",
			Prompt: "STEP 3 — WEBSITE STRUCTURE & UX\n" +
				"Deliver:\n" +
				"- Sitemap (minimal pages)\n" +
				"- Homepage section order (text wireframe)\n" +
				"- CTA strategy (primary + secondary)\n" +
				"Rule: visitor understands value in 60 seconds.\n" +
				"Must align with Step 1 and Step 2.",
			ExpectedOutput: "Sitemap + homepage layout + CTA plan.",
			MaxWords:       600,
		},
		{
			Ordinal: 4,
			Title:   "Homepage copy",
			Prompt: "STEP 4 — HOMEPAGE COPY (PUBLISH-READY)\n" +
				"Write full homepage copy:\n" +
				"- Problem-first hero\n" +
				"- Pain articulation\n" +
				"- Value proposition\n" +
				"- Process\n" +
				"- Credibility framing (no bragging)\n" +
				"- CTA\n" +
				"Tone: calm, confident, human, opinionated.\n" +
				"Must align with Step 1–3.",
			ExpectedOutput: "Publish-ready homepage copy.",
			MaxWords:       800,
		},
		{
			Ordinal: 5,
			Title:   "Authority content strategy",
			Prompt: "STEP 5 — AUTHORITY CONTENT STRATEGY\n" +
				"Deliver 10–15 topics for early-stage founders.\n" +
				"For each: decision focus, stance/angle (1–2 sentences), and which offer/CTA it points to.\n" +
				"Avoid generic advice and SEO bait.",
			ExpectedOutput: "Content roadmap with decision angles + CTA mapping.",
			MaxWords:       800,
		},
		{
			Ordinal: 6,
			Title:   "Final integration",
			Prompt: "STEP 6 — FINAL INTEGRATION\n" +
				"Integrate everything into one cohesive final package:\n" +
				"- Final positioning summary\n" +
				"- Final offers\n" +
				"- Final homepage copy\n" +
				"- Content roadmap\n" +
				"- Next execution steps\n" +
				"Everything must be coherent and decisive.",
			ExpectedOutput: "One cohesive final output package.",
			MaxWords:       800,
		},
	}
}
