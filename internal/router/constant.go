package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Classifier prompt. The taxonomy enumeration and the strict-JSON
// output contract are part of the classifier's behavior; changing the
// label descriptions changes routing.
const PromptClassifySystem = `# ROLE
Classification Expert for ClientaTech.

# GOAL
Classify the user's question into one of the known Functional Scopes.

# INSTRUCTIONS
Analyze the user's query and map it to one of the following categories:

1. PROFILE: Broad overview of one client (e.g., "Me fale sobre X", "Dados da Y", "Status de Z")
2. HISTORY: List of interactions/events (e.g., "Interações de X", "Histórico", "O que aconteceu com Y")
3. RISK: Inference/Subjective (e.g., "Risco de churn", "Clientes insatisfeitos", "Clientes bons/ruins", "Melhores", "Piores")
4. ABSENCE: Negative logic (e.g., "Clientes sem interação", "Quem sumiu")
5. GENERAL: Aggregations & lists & specific value queries (e.g., "Quais contratos vencem?", "Valor total?", "Total de clientes?", "Valor da empresa X")
6. GREETING: Conversational/Meta (e.g., "Oi", "Olá", "O que você faz?", "Ajuda", "Quem é você?")

# OUTPUT FORMAT: JSON ONLY.
{
	"category": "Category Name",
	"reasoning": "Brief explanation of why"
}`

// Classifier configuration
const (
	// ClassifyTemperature pins decoding to fully deterministic output.
	ClassifyTemperature = 0.0

	// FallbackIntent is the safe default for every failure mode:
	// a mis-routed question degrades to a conversational answer
	// instead of aborting the request.
	FallbackIntent = IntentGreeting

	// ComponentName tags classifier model calls in the event stream.
	ComponentName = "intent_classifier"
)
