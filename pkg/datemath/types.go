package datemath

// DateFormat is the canonical calendar date layout used in prompts.
const DateFormat = "2006-01-02"
