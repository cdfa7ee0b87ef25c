package report

import (
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/cory-johannsen/dungeonsim/internal/game/combat"
	"github.com/cory-johannsen/dungeonsim/internal/game/enemy"
	"github.com/cory-johannsen/dungeonsim/internal/game/hero"
)

// Data bundles everything the HTML report needs from a finished session.
type Data struct {
	Hero        *hero.Hero
	Enemy       *enemy.Enemy
	Result      combat.Result
	Events      []combat.Event
	BattleDate  string
	SessionID   string
	GeneratedAt time.Time
}

// htmlView is the precomputed template context. All derived presentation
// values (colors, percentages, badge classes) are resolved here so the
// template stays logic-free.
type htmlView struct {
	HeroName       string
	HeroClass      string
	HeroBadge      string
	HeroLevel      int
	HeroAttack     int
	HeroDefense    int
	HeroCrit       string
	HeroHealth     int
	HeroMaxHealth  int
	HeroHPPercent  float64
	Hardcore       bool
	EnemyName      string
	EnemyLevel     int
	EnemyAttack    int
	EnemyDefense   int
	EnemyHealth    int
	EnemyMaxHealth int
	EnemyHPPercent float64
	ResultColor    string
	ResultText     string
	ResultSubtitle string
	BattleDate     string
	SessionID      string
	GeneratedAt    string
	LogLines       []string
}

// WriteHTMLReport renders the styled battle report to path.
//
// Precondition: d.Hero and d.Enemy must be non-nil; path must be writable.
// Postcondition: The file at path contains a standalone HTML document, or a
// non-nil error is returned.
func WriteHTMLReport(path string, d Data) error {
	view := buildView(d)

	var b strings.Builder
	if err := reportTemplate.Execute(&b, view); err != nil {
		return fmt.Errorf("rendering battle report: %w", err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing battle report %q: %w", path, err)
	}
	return nil
}

func buildView(d Data) htmlView {
	view := htmlView{
		HeroName:       d.Hero.Name,
		HeroClass:      d.Hero.Class.Name,
		HeroBadge:      strings.ToLower(d.Hero.Class.ID),
		HeroLevel:      d.Hero.Level,
		HeroAttack:     d.Hero.Attack,
		HeroDefense:    d.Hero.Defense,
		HeroCrit:       fmt.Sprintf("%.1f%%", d.Hero.CriticalChance*100),
		HeroHealth:     d.Hero.ClampedHealth(),
		HeroMaxHealth:  d.Hero.MaxHealth,
		Hardcore:       d.Hero.Hardcore,
		EnemyName:      d.Enemy.Name,
		EnemyLevel:     d.Enemy.Level,
		EnemyAttack:    d.Enemy.Attack,
		EnemyDefense:   d.Enemy.Defense,
		EnemyHealth:    d.Enemy.ClampedHealth(),
		EnemyMaxHealth: d.Enemy.MaxHealth,
		BattleDate:     d.BattleDate,
		SessionID:      d.SessionID,
		GeneratedAt:    d.GeneratedAt.Format("2006-01-02 15:04:05"),
	}

	view.HeroHPPercent = hpPercent(d.Hero.ClampedHealth(), d.Hero.MaxHealth)
	view.EnemyHPPercent = hpPercent(d.Enemy.ClampedHealth(), d.Enemy.MaxHealth)

	if d.Result.Victory {
		view.ResultColor = "#2ecc71"
		view.ResultText = "VICTORY!"
		view.ResultSubtitle = "The hero emerges triumphant!"
	} else {
		view.ResultColor = "#e74c3c"
		view.ResultText = "DEFEAT"
		if d.Result.State == combat.StateTimeout {
			view.ResultSubtitle = "The enemy escaped before the battle could be decided..."
		} else {
			view.ResultSubtitle = "The hero has fallen..."
		}
	}

	view.LogLines = make([]string, 0, len(d.Events))
	for _, ev := range d.Events {
		view.LogLines = append(view.LogLines, ev.String())
	}
	return view
}

// hpPercent returns current/max as a percentage, guarding a zero max.
func hpPercent(current, max int) float64 {
	if max <= 0 {
		return 0
	}
	return float64(current) / float64(max) * 100
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Battle Report - {{.HeroName}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
  background: linear-gradient(135deg, #1e3c72 0%, #2a5298 100%);
  padding: 20px;
  min-height: 100vh;
}
.container {
  max-width: 1000px; margin: 0 auto; background: white;
  border-radius: 15px; box-shadow: 0 20px 60px rgba(0, 0, 0, 0.3);
  overflow: hidden;
}
.header {
  background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
  color: white; padding: 40px; text-align: center;
}
.header h1 { font-size: 2.5em; margin-bottom: 10px; }
.header .date { opacity: 0.9; font-size: 1.1em; }
.result-banner {
  background: {{.ResultColor}}; color: white; padding: 30px;
  text-align: center; font-size: 2.5em; font-weight: bold;
}
.result-subtitle { font-size: 0.5em; margin-top: 10px; opacity: 0.9; }
.content { padding: 40px; }
.battle-summary {
  display: grid; grid-template-columns: 1fr 1fr; gap: 30px;
  margin-bottom: 40px;
}
.character-card {
  background: #f8f9fa; border-radius: 10px; padding: 25px;
  border: 3px solid #dee2e6;
}
.character-card h2 {
  color: #2c3e50; margin-bottom: 15px; font-size: 1.5em;
  border-bottom: 2px solid #3498db; padding-bottom: 10px;
}
.stat-row {
  display: flex; justify-content: space-between; margin: 10px 0;
  padding: 8px; background: white; border-radius: 5px;
}
.stat-label { font-weight: bold; color: #555; }
.stat-value { color: #2c3e50; font-weight: 600; }
.hp-bar-container { margin: 20px 0; }
.hp-bar-label { font-weight: bold; margin-bottom: 8px; color: #2c3e50; }
.hp-bar {
  width: 100%; height: 30px; background: #ecf0f1; border-radius: 15px;
  overflow: hidden; border: 2px solid #bdc3c7;
}
.hp-bar-fill {
  height: 100%;
  background: linear-gradient(90deg, #e74c3c 0%, #c0392b 100%);
  display: flex; align-items: center; justify-content: center;
  color: white; font-weight: bold; font-size: 0.9em;
}
.hp-bar-fill.hero {
  background: linear-gradient(90deg, #2ecc71 0%, #27ae60 100%);
}
.badge {
  display: inline-block; padding: 5px 12px; border-radius: 20px;
  font-size: 0.85em; font-weight: bold; margin-top: 10px;
}
.badge-warrior { background: #e67e22; color: white; }
.badge-mage { background: #9b59b6; color: white; }
.badge-rogue { background: #16a085; color: white; }
.badge-hardcore { background: #c0392b; color: white; margin-left: 10px; }
.battle-log {
  background: #2c3e50; color: #ecf0f1; padding: 25px; border-radius: 10px;
  max-height: 500px; overflow-y: auto;
  font-family: 'Courier New', monospace; font-size: 0.9em; line-height: 1.6;
}
.battle-log h3 { color: #3498db; margin-bottom: 15px; font-size: 1.3em; }
.log-entry {
  margin: 5px 0; padding: 5px; border-left: 3px solid #3498db;
  padding-left: 10px;
}
.footer {
  text-align: center; padding: 20px; background: #f8f9fa;
  color: #7f8c8d; font-size: 0.9em;
}
@media (max-width: 768px) {
  .battle-summary { grid-template-columns: 1fr; }
  .header h1 { font-size: 1.8em; }
  .result-banner { font-size: 1.8em; }
}
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>Dungeon Battle Report</h1>
    <div class="date">Battle Date: {{.BattleDate}}</div>
  </div>

  <div class="result-banner">
    {{.ResultText}}
    <div class="result-subtitle">{{.ResultSubtitle}}</div>
  </div>

  <div class="content">
    <div class="battle-summary">
      <div class="character-card">
        <h2>Hero</h2>
        <div class="stat-row"><span class="stat-label">Name:</span><span class="stat-value">{{.HeroName}}</span></div>
        <div class="stat-row"><span class="stat-label">Class:</span><span class="stat-value">{{.HeroClass}}</span></div>
        <div class="stat-row"><span class="stat-label">Level:</span><span class="stat-value">{{.HeroLevel}}</span></div>
        <div class="stat-row"><span class="stat-label">Attack:</span><span class="stat-value">{{.HeroAttack}}</span></div>
        <div class="stat-row"><span class="stat-label">Defense:</span><span class="stat-value">{{.HeroDefense}}</span></div>
        <div class="stat-row"><span class="stat-label">Crit Chance:</span><span class="stat-value">{{.HeroCrit}}</span></div>
        <div>
          <span class="badge badge-{{.HeroBadge}}">{{.HeroClass}}</span>
          {{if .Hardcore}}<span class="badge badge-hardcore">HARDCORE</span>{{end}}
        </div>
        <div class="hp-bar-container">
          <div class="hp-bar-label">Health: {{.HeroHealth}}/{{.HeroMaxHealth}}</div>
          <div class="hp-bar">
            <div class="hp-bar-fill hero" style="width: {{printf "%.0f" .HeroHPPercent}}%">{{printf "%.0f" .HeroHPPercent}}%</div>
          </div>
        </div>
      </div>

      <div class="character-card">
        <h2>Enemy</h2>
        <div class="stat-row"><span class="stat-label">Name:</span><span class="stat-value">{{.EnemyName}}</span></div>
        <div class="stat-row"><span class="stat-label">Level:</span><span class="stat-value">{{.EnemyLevel}}</span></div>
        <div class="stat-row"><span class="stat-label">Attack:</span><span class="stat-value">{{.EnemyAttack}}</span></div>
        <div class="stat-row"><span class="stat-label">Defense:</span><span class="stat-value">{{.EnemyDefense}}</span></div>
        <div class="hp-bar-container">
          <div class="hp-bar-label">Health: {{.EnemyHealth}}/{{.EnemyMaxHealth}}</div>
          <div class="hp-bar">
            <div class="hp-bar-fill" style="width: {{printf "%.0f" .EnemyHPPercent}}%">{{printf "%.0f" .EnemyHPPercent}}%</div>
          </div>
        </div>
      </div>
    </div>

    <div class="battle-log">
      <h3>Battle Log</h3>
      {{range .LogLines}}<div class="log-entry">{{.}}</div>
      {{end}}
    </div>
  </div>

  <div class="footer">
    Generated by Dungeon Battle Simulator | {{.GeneratedAt}} | Session {{.SessionID}}
  </div>
</div>
</body>
</html>
`))
