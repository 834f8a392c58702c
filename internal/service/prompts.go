package service

const quizSystemPrompt = "You are a pharmacy education expert. You MUST respond with ONLY valid JSON format. No markdown, no code blocks, no extra text."

const quizUserPrompt = `You are a pharmacy education expert. Generate exactly %[1]d multiple-choice questions about %[2]s at %[3]s level.

IMPORTANT: Return ONLY a valid JSON array. No markdown, no code blocks, no explanations.

Format:
[
  {
    "question": "Clear, specific question about %[2]s",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correctAnswer": 0,
    "explanation": "Brief explanation why this answer is correct"
  }
]

Rules:
- correctAnswer must be 0, 1, 2, or 3 (index of correct option)
- Each question must be relevant to %[2]s
- Difficulty: %[3]s
- Return ONLY the JSON array, nothing else`

const interactionSystemPrompt = "You are a clinical pharmacist expert in drug interactions. Provide accurate, evidence-based information."

const interactionUserPrompt = `As a clinical pharmacist, analyze potential drug interactions between these medications: %s.

For each significant interaction found, provide:
1. Which drugs interact
2. Severity level (High/Moderate/Low)
3. Brief description of the interaction
4. Clinical recommendation

Format as JSON array:
[
  {
    "drugs": ["Drug1", "Drug2"],
    "severity": "High",
    "description": "...",
    "recommendation": "..."
  }
]

If no significant interactions, return an empty array. Focus on clinically significant interactions only.`

const drugInfoSystemPrompt = "You are a pharmacy reference expert. Provide accurate drug information."

const drugInfoUserPrompt = `Provide comprehensive information about the drug "%s" including:
1. Generic and brand names
2. Drug class
3. Mechanism of action
4. Common indications
5. Common side effects
6. Important contraindications
7. Dosing considerations

Format as JSON:
{
  "genericName": "...",
  "brandNames": ["..."],
  "drugClass": "...",
  "mechanism": "...",
  "indications": ["..."],
  "sideEffects": ["..."],
  "contraindications": ["..."],
  "dosing": "..."
}`

const summarySystemPrompt = "You are a research paper analysis expert. Provide clear, concise summaries."

const summaryUserPrompt = `Analyze this research paper and provide a structured summary:

%s

Please provide:
1. Key Findings (2-3 sentences)
2. Methodology (2-3 sentences)
3. Conclusions (2-3 sentences)
4. Full Summary (1 paragraph)

Format as JSON:
{
  "keyFindings": "...",
  "methodology": "...",
  "conclusions": "...",
  "fullSummary": "..."
}`

const chatSystemPrompt = `You are a knowledgeable pharmacy assistant helping pharmacy students and professionals.
Provide accurate, detailed information about drugs, mechanisms of action, interactions, side effects,
pharmacology, medicinal chemistry, and pharmacy practice. Always prioritize patient safety and
evidence-based information. If you're unsure about something, acknowledge it and suggest consulting
additional resources or healthcare professionals.`
