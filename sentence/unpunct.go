package sentence

// Unpunct removes punctuation tokens. Tokens governed by a removed token are
// attached to its nearest non punctuation ancestor. Ids are kept, so the
// result has gaps where punctuation was.
func Unpunct(tokens []Token) []Token {
	punct := make(map[int]Governor)
	for _, tk := range tokens {
		if tk.Pos == PosPunct {
			punct[tk.Id] = tk.Head
		}
	}

	if len(punct) == 0 {
		return tokens
	}

	out := make([]Token, 0, len(tokens)-len(punct))
	for _, tk := range tokens {
		if _, ok := punct[tk.Id]; ok {
			continue
		}

		// climb out of punctuation
		seen := map[int]bool{}
		for {
			gov, ok := tk.Head.Id()
			if !ok {
				break
			}
			next, isPunct := punct[gov]
			if !isPunct {
				break
			}
			if seen[gov] {
				tk.Head = UnattachedGovernor()
				break
			}
			seen[gov] = true
			tk.Head = next
		}

		out = append(out, tk)
	}

	return out
}
