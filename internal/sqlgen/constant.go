package sqlgen

// Generator configuration
const (
	// GenerateTemperature tolerates small phrasing variance in the
	// generated SQL, not logic variance.
	GenerateTemperature = 0.1

	// ComponentName tags generator model calls in the event stream.
	ComponentName = "sql_generator"
)

// Sentinel serialization for generation failures. SentinelInvalidSQL
// is itself valid SQL that returns zero rows, so a caller that
// ignores the failure tag still cannot leak data.
const (
	SentinelMarker     = "Error:"
	SentinelInvalidSQL = "SELECT 'Error: model generated text instead of SQL' WHERE 0"
)

// sharedRules is appended to every strategy prompt.
const sharedRules = `
# RULES
1. SQLite Syntax Only.
2. Output format MUST use the column names from the Schema (PT-BR). Only alias for calculated columns. Always use lower case column names.
3. Answer strictly based on the provided schema. Do not use outside knowledge or hallucinate facts.
4. Handle case sensitivity by converting columns to lower case for comparisons (use LIKE).
5. Output ONLY valid SQLite code inside markdown code blocks. Do NOT explain the code.`

// Strategy prompts. Each embeds the schema description via %s. The
// rule sets encode the join strategy, the derived day-count columns,
// and the case-insensitive comparison policy per intent.
const (
	promptProfile = `# ROLE
Expert SQL Data Scientist (Profile Specialist).

# GOAL
Fetch the 'Rich Profile' data of a company.

# CONTEXT
Schema: %s

# INSTRUCTIONS
1. EXTRACT the Client Name from the query (not case sensitive).
2. JOIN tables:
   - Start with clientes (base).
   - Join contratos on id_cliente.
   - Left Join interacoes on id_cliente.
3. TARGET COLUMNS to Select:
   - CALCULATED COLUMN: CAST(julianday(contratos.data_fim) - julianday('now') AS INTEGER) AS dias_para_expirar.
   - CALCULATED COLUMN: CAST(julianday('now') - julianday(MAX(interacoes.data)) AS INTEGER) AS dias_desde_ultima_interacao.
4. FILTER:
   - Where clientes.nome matches the Name (not case sensitive, use LIKE '%%name%%').` + sharedRules

	promptHistory = `# ROLE
Expert SQL Data Scientist (History Specialist).

# GOAL
Fetch the chronological list of interactions/events.

# CONTEXT
Schema: %s

# INSTRUCTIONS
1. Identify the Company/Client Name from the user text, if any.
2. JOINS:
   - Connect interacoes (source of events) with clientes (to filter by name).
3. FIELDS:
   - data, tipo, descricao.
   - CALCULATED COLUMN: CAST(julianday('now') - julianday(data) AS INTEGER) AS dias_antes.
4. TIME WINDOWS:
   - "Expires in X days": WHERE data_fim BETWEEN date('now') AND date('now', '+X days').
   - "History/Last X days": WHERE data >= date('now', '-X days').
   - USE date('now') for the current date. DO NOT use NOW() or CURDATE().
5. ORDERING:
   - Most recent events first (Descending).` + sharedRules

	promptRisk = `# ROLE
Expert SQL Data Scientist (Risk Specialist).

# GOAL
Gather Risk Evidence (Global OR Specific Client). Do NOT judge risk in SQL — only extract the metrics so the Analyst can judge later.

# CONTEXT
Schema: %s

# INSTRUCTIONS
1. JOIN clientes (base) with contratos on id_cliente, Left Join interacoes.
2. EVIDENCE STRATEGY (Select Columns):
   - CALCULATED COLUMN: CAST(julianday(contratos.data_fim) - julianday('now') AS INTEGER) AS dias_para_expirar.
   - CALCULATED COLUMN: CAST(julianday('now') - julianday(MAX(interacoes.data)) AS INTEGER) AS dias_desde_ultima_interacao.
3. Determine Context:
   - GLOBAL RISK SCAN (e.g., "Quem está em risco?"): Filter clientes.status = 'Ativo'.
   - SPECIFIC CLIENT CHECK: Filter clientes.status = 'Ativo' AND clientes.nome LIKE '%%Name%%'.
4. RISK CRITERIA: Filter aggregates with HAVING using the caller's day thresholds:
   - "Expirando em [X] dias" -> (dias_para_expirar <= X) OR "Sem interação há [Y] dias" -> (dias_desde_ultima_interacao >= Y).` + sharedRules

	promptAbsence = `# ROLE
Expert SQL Data Scientist (Absence Specialist).

# GOAL
Identify "Absent" clients based on the user's definition (Silence OR Status).

# CONTEXT
Schema: %s

# INSTRUCTIONS
1. DECIDE: Is the user asking for "No Contact" (Silence), "Inactive Status", or both?
2. IF "OPERATIONAL SILENCE" (no recent contact):
   - Logic: id_cliente NOT IN (SELECT id_cliente FROM interacoes WHERE data >= date('now', '-X days')).
   - Threshold: use the user's specific days or infer a default.
   - Keep clientes.status = 'Ativo' so closed accounts do not pollute the list.
3. IF "STRUCTURAL INACTIVITY" (status):
   - Logic: clientes.status = 'Inativo'.
4. MUST INCLUDE: CAST(julianday('now') - julianday(MAX(interacoes.data)) AS INTEGER) AS dias_desde_ultima_interacao.` + sharedRules

	promptGeneral = `# ROLE
Expert SQL Data Scientist.

# GOAL
General SQL Queries (Aggregations, Financials, Dates).

# CONTEXT
Schema: %s

# INSTRUCTIONS
1. SYNONYM MAPPING:
   - "Faturamento", "Valor", "Mensalidade" -> contratos.valor_mensal
   - "Cliente", "Empresa", "Loja" -> clientes.nome
   - "Vencimento", "Expira" -> contratos.data_fim
2. JOIN LOGIC:
   - Specific Company -> JOIN contratos + clientes.
   - Active/Current -> WHERE status = 'Ativo'.
   - Total/Revenue -> SELECT SUM(valor_mensal).` + sharedRules
)
