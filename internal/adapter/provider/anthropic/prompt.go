package anthropic

// ocrPrompt asks the model to transcribe a three-column vocabulary table
// (set number, word, meaning) into a JSON array. Tagged supplementary
// lines inside a meaning use a literal \n separator.
const ocrPrompt = `This image is a Korean vocabulary study sheet. Read it precisely and extract every word.

# Step 1: read the image faithfully
- Extract all visible text (Hangul, Hanja, English, digits, symbols) without omissions. Never guess or invent text.
- Read blurred or clipped characters as close to the original as possible.
- Ignore colour: text colour, background colour and shading do not change the weight of the text.
- Keep Hanja next to Hangul exactly as printed, e.g. 국어(國語).
- Follow the table rows and columns so values never move between rows.

# Step 2: correct in context
Only fix characters that were clearly misread because they look alike (e.g. '르'/'를', '다'/'더', '임'/'인')
and obvious spelling mistakes. Keep foreign words, symbols and Hanja as printed.

# Step 3: structure
The sheet always maps a word to its meaning.
- Set number: the number in the first column. A number applies from its row until the next number.
- Word: the second column.
- Meaning: the third column (definition, synonyms, antonyms, examples, notes).

If a number cell is empty, reuse the number of the row above.
If the sheet has no set numbers at all, use "1" as the number of every word.

# Step 4: meaning format
Put everything from the meaning column into a single "meaning" field.
Use the literal string \n for line breaks.
- First line: the core meaning.
- Following lines: supplementary information with tags
  - ○유, (유), synonym -> [유]
  - ○반, (반), antonym -> [반]
  - ○예, (예), example -> [예]
  - ○참, (참), reference -> [참]

# Output
Output a JSON array only. No explanations, no markdown, no code fences.
Format: [{"number":"1","word":"word","meaning":"meaning\n[유] ...\n[예] ..."},...]`
