// Package main provides localization for the rasterplot CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Scenes":            "シーン",
		"Rasterizer":        "ラスタライザ",
		"Canvas and Output": "キャンバスと出力",
		"Debug":             "デバッグ",
		"Logging":           "ログ",

		// Root command
		"Render chart scenes to images with a software rasterizer": "ソフトウェアラスタライザでチャートのシーンを画像に描画",

		// Commands
		"Render example scenes to image files":              "サンプルシーンを画像ファイルに描画",
		"Re-render whenever the configuration file changes": "設定ファイルが変更されるたびに再描画",
		"Show version information":                          "バージョン情報を表示",
		"rasterplot version %s":                             "rasterplot バージョン %s",

		// Scene flags
		"YAML configuration file":                           "YAML設定ファイル",
		"Scene to render (histogram, line, snowflake, all)": "描画するシーン（histogram, line, snowflake, all）",
		"Preset (screen, print)":                            "プリセット（screen, print）",

		// Rasterizer flags
		"Rasterizer (gg, gogpu)":                    "ラスタライザ（gg, gogpu）",
		"Parallel render jobs (0 = number of CPUs)": "並列描画数（0 = CPU数）",

		// Canvas and output flags
		"Canvas width in pixels":                             "キャンバスの幅（ピクセル）",
		"Canvas height in pixels":                            "キャンバスの高さ（ピクセル）",
		"Background color (hex, e.g., #ffffff)":              "背景色（16進数、例: #ffffff）",
		"Image format (png, jpeg, bmp, tiff)":                "画像形式（png, jpeg, bmp, tiff）",
		"JPEG quality (1-100)":                               "JPEG品質（1-100）",
		"Output scale factor":                                "出力の拡大率",
		"Output directory":                                   "出力ディレクトリ",
		"Output execution summary to file (Markdown format)": "実行サマリーをファイルに出力（Markdown形式）",

		// Debug flags
		"Enable debug output":        "デバッグ出力を有効化",
		"Directory for debug output": "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Runtime messages
		"Interrupted, shutting down...":    "中断されました。シャットダウン中...",
		"--config is required for watch":   "watch には --config が必要です",
		"Failed to load configuration: %s": "設定の読み込みに失敗しました: %s",
		"Summary saved to %s":              "サマリーを %s に保存しました",
		"Failed to write summary: %s":      "サマリーの書き込みに失敗しました: %s",

		// Summary content
		"Render Summary":           "描画サマリー",
		"Settings":                 "設定",
		"Item":                     "項目",
		"Value":                    "値",
		"Backend":                  "バックエンド",
		"Format":                   "形式",
		"Workers":                  "ワーカー数",
		"Scale":                    "拡大率",
		"Output Directory":         "出力ディレクトリ",
		"No scenes were rendered.": "描画されたシーンはありません。",
		"Scene":                    "シーン",
		"Canvas":                   "キャンバス",
		"Output":                   "出力",
		"Draw Calls":               "描画呼び出し",
		"Render Time":              "描画時間",
		"File Size":                "ファイルサイズ",
		"Totals":                   "合計",
		"Total Size":               "合計サイズ",
		"Duration":                 "処理時間",
		"Generated at":             "生成日時",
	})
}
