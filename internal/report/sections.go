package report

import "fmt"

// Default markers used when no configuration overrides them. The marker and
// heading are part of the results/template file contract and are not
// localized.
const (
	// DefaultSuccessMarker is the glyph counted in the results listing
	DefaultSuccessMarker = "✅"

	// DefaultAnchorHeading is the template line the analysis fragment is
	// inserted after
	DefaultAnchorHeading = "### 目標達成状況"
)

// Sections holds the prose blocks substituted into the report template.
type Sections struct {
	AchievementAnalysis   string
	PerformanceEvaluation string
	Recommendations       string
	Conclusion            string
}

const achievementAllPassed = `✅ **すべてのテストコマンドが目標時間を達成しました！**

パフォーマンス改善の効果が確認できました。すべてのテストが目標時間内に完了しています。`

const achievementPartialFormat = `⚠️ **一部のテストコマンドが目標時間を達成しました**

達成率: %s%% (%d/%d)

未達成のテストコマンドについては、さらなる最適化が必要です。`

const achievementNonePassed = `❌ **すべてのテストコマンドが目標時間を未達成です**

パフォーマンス改善が必要です。以下の推奨事項を確認してください。`

const performanceEvaluation = `測定結果から以下の評価を行いました：

- **測定回数**: 各コマンド3回実行
- **測定環境**: ローカル開発環境
- **測定精度**: 平均値を使用して評価

実行時間のばらつきが大きい場合は、測定環境の影響を受けている可能性があります。`

const recommendationsMaintain = `現在のパフォーマンスは良好です。以下の点に注意して維持してください：

1. **定期的な測定**: パフォーマンスの劣化を早期に検出
2. **テストの追加**: 新しいテストを追加する際は実行時間に注意
3. **CI/CD環境での確認**: ローカル環境だけでなくCI/CD環境でも測定`

const recommendationsImprove = `以下の改善を検討してください：

1. **並列実行の最適化**: maxConcurrencyの調整
2. **テスト分離の見直し**: 不要な分離を削減
3. **タイムアウト設定の調整**: 適切なタイムアウト値の設定
4. **カバレッジ計算の最適化**: 必要な場合のみ実行
5. **テストデータの最適化**: テストデータのサイズを削減`

const conclusionSuccess = `テストパフォーマンス改善は成功しました。すべてのテストコマンドが目標時間を達成しています。

今後も定期的な測定を行い、パフォーマンスの維持に努めてください。`

const conclusionPartialFormat = `テストパフォーマンス改善は部分的に成功しました。

達成率: **%s%%** (%d/%d)

未達成のテストコマンドについては、推奨事項を参考にさらなる改善を行ってください。`

// BuildSections selects the prose blocks for the given metrics.
//
// The branch is three-way: all tests passed, some passed, none passed. The
// full-success branch shows no rate figure; the partial branch embeds the
// rate and counts; the full-failure branch reuses the partial-style
// conclusion with a zero rate. The performance evaluation never varies.
func BuildSections(m Metrics) Sections {
	s := Sections{
		PerformanceEvaluation: performanceEvaluation,
	}

	switch {
	case m.AllPassed():
		s.AchievementAnalysis = achievementAllPassed
		s.Recommendations = recommendationsMaintain
		s.Conclusion = conclusionSuccess
	case m.Achieved > 0:
		s.AchievementAnalysis = fmt.Sprintf(achievementPartialFormat, FormatRate(m.Rate), m.Achieved, m.Total)
		s.Recommendations = recommendationsImprove
		s.Conclusion = fmt.Sprintf(conclusionPartialFormat, FormatRate(m.Rate), m.Achieved, m.Total)
	default:
		s.AchievementAnalysis = achievementNonePassed
		s.Recommendations = recommendationsImprove
		s.Conclusion = fmt.Sprintf(conclusionPartialFormat, FormatRate(m.Rate), m.Achieved, m.Total)
	}

	return s
}
