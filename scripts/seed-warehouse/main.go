package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Seeds the demo warehouse with 15 companies, their contracts and
// interaction history. Re-running wipes and recreates the data.
// EpsilonFood is forced into a churn-risk shape (active, no recent
// contact) so risk queries always have something to find.

const (
	defaultDBPath = "data/clientatech.db"
	dateFormat    = "2006-01-02"
	timeFormat    = "2006-01-02 15:04:05"
)

var createStmts = []string{
	`CREATE TABLE IF NOT EXISTS clientes (
		id_cliente INTEGER PRIMARY KEY,
		nome TEXT NOT NULL,
		segmento TEXT,
		status TEXT, -- 'Ativo', 'Inativo'
		data_cadastro DATE
	)`,
	`CREATE TABLE IF NOT EXISTS contratos (
		id_contrato INTEGER PRIMARY KEY,
		id_cliente INTEGER,
		plano TEXT, -- 'Basic', 'Pro', 'Enterprise'
		valor_mensal REAL,
		data_inicio DATE,
		data_fim DATE,
		status TEXT, -- 'Ativo', 'Encerrado'
		FOREIGN KEY(id_cliente) REFERENCES clientes(id_cliente)
	)`,
	`CREATE TABLE IF NOT EXISTS interacoes (
		id_interacao INTEGER PRIMARY KEY,
		id_cliente INTEGER,
		tipo TEXT, -- 'Suporte', 'Vendas', 'Financeiro'
		descricao TEXT,
		data DATETIME,
		FOREIGN KEY(id_cliente) REFERENCES clientes(id_cliente)
	)`,
}

var (
	segmentos = []string{"Varejo", "Tecnologia", "Saúde", "Finanças", "Educação"}

	planos = map[string]float64{
		"Basic":      1500.0,
		"Pro":        3500.0,
		"Enterprise": 8000.0,
	}
	planoNomes = []string{"Basic", "Pro", "Enterprise"}

	nomesEmpresas = []string{
		"TechSolutions", "MegaVarejo", "SaudeMais", "EducaNet", "FinanceOne",
		"AlphaLog", "BetaConstruct", "GamaServices", "DeltaTrade", "EpsilonFood",
		"ZetaPharma", "EtaEnergy", "ThetaSystems", "IotaSoft", "KappaConsulting",
	}

	tiposInteracao = []string{"Suporte", "Vendas", "Financeiro"}

	descricoes = []string{
		"Dúvida sobre fatura", "Solicitação de upgrade", "Problema no login",
		"Reunião trimestral", "Reclamação de lentidão", "Elogio ao atendimento",
		"Dúvida contratual", "Pedido de cancelamento", "Treinamento de equipe",
	}
)

type cliente struct {
	id     int
	nome   string
	status string
}

func main() {
	dbPath := defaultDBPath
	if len(os.Args) > 1 {
		dbPath = os.Args[1]
	}

	if err := run(dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run(dbPath string) error {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	for _, stmt := range createStmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}

	// Wipe so re-runs do not duplicate
	for _, table := range []string{"interacoes", "contratos", "clientes"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	now := time.Now()
	rng := rand.New(rand.NewSource(now.UnixNano()))

	clientes := make([]cliente, 0, len(nomesEmpresas))
	for i, nome := range nomesEmpresas {
		id := i + 1
		status := "Ativo"
		if rng.Float64() <= 0.2 {
			status = "Inativo"
		}
		// EpsilonFood must stay active for the churn-risk demo
		if nome == "EpsilonFood" {
			status = "Ativo"
		}
		cadastro := now.AddDate(0, 0, -(60 + rng.Intn(671)))

		if _, err := db.Exec(
			"INSERT INTO clientes (id_cliente, nome, segmento, status, data_cadastro) VALUES (?, ?, ?, ?, ?)",
			id, nome, segmentos[rng.Intn(len(segmentos))], status, cadastro.Format(dateFormat),
		); err != nil {
			return fmt.Errorf("insert cliente %s: %w", nome, err)
		}
		clientes = append(clientes, cliente{id: id, nome: nome, status: status})
	}

	for _, c := range clientes {
		plano := planoNomes[rng.Intn(len(planoNomes))]
		valor := planos[plano]

		var inicio, fim time.Time
		status := "Ativo"
		switch {
		case c.nome == "EpsilonFood":
			// Active contract expiring within a month
			inicio = now.AddDate(0, 0, -(30 + rng.Intn(336)))
			fim = now.AddDate(0, 0, 1+rng.Intn(29))
		case c.status == "Ativo":
			inicio = now.AddDate(0, 0, -(30 + rng.Intn(336)))
			if rng.Float64() < 0.3 {
				fim = now.AddDate(0, 0, 1+rng.Intn(29))
			} else {
				fim = now.AddDate(0, 0, 60+rng.Intn(306))
			}
		default:
			status = "Encerrado"
			inicio = now.AddDate(0, 0, -(400 + rng.Intn(301)))
			fim = inicio.AddDate(1, 0, 0)
		}

		if _, err := db.Exec(
			"INSERT INTO contratos (id_cliente, plano, valor_mensal, data_inicio, data_fim, status) VALUES (?, ?, ?, ?, ?, ?)",
			c.id, plano, valor, inicio.Format(dateFormat), fim.Format(dateFormat), status,
		); err != nil {
			return fmt.Errorf("insert contrato for %s: %w", c.nome, err)
		}
	}

	for _, c := range clientes {
		n := rng.Intn(6)
		if c.nome == "EpsilonFood" {
			// Old interactions only: silent for at least 90 days
			n = 2
		}

		for i := 0; i < n; i++ {
			var when time.Time
			if c.nome == "EpsilonFood" {
				when = now.AddDate(0, 0, -(90 + 1 + rng.Intn(100)))
			} else {
				when = now.AddDate(0, 0, -(1 + rng.Intn(300)))
			}

			if _, err := db.Exec(
				"INSERT INTO interacoes (id_cliente, tipo, descricao, data) VALUES (?, ?, ?, ?)",
				c.id, tiposInteracao[rng.Intn(len(tiposInteracao))], descricoes[rng.Intn(len(descricoes))], when.Format(timeFormat),
			); err != nil {
				return fmt.Errorf("insert interacao for %s: %w", c.nome, err)
			}
		}
	}

	fmt.Printf("Database %q seeded: %d clients with contracts and interactions.\n", dbPath, len(clientes))
	return nil
}
