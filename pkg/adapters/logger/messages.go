package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Rendering %d scenes":             "%d 個のシーンを描画します",
		"Output saved to %s":              "出力を %s に保存しました",
		"Pipeline completed successfully": "パイプラインが正常に完了しました",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",

		// Layout stage
		"Layout for %s: plot %dx%d at (%d, %d)": "%s のレイアウト: プロット領域 %dx%d 位置 (%d, %d)",

		// Render stage
		"Rendering %d scenes with %d workers on %s": "%d 個のシーンを %d ワーカーで描画中 (%s)",
		"Rendering completed":                       "描画が完了しました",
		"%s failed: %v":                             "%s が失敗しました: %v",

		// Encode stage
		"Encoded %s: %d bytes": "%s をエンコードしました: %d バイト",

		// Config watcher
		"Watching %s":               "%s を監視中",
		"Configuration changed: %s": "設定が変更されました: %s",

		// Warnings
		"Failed to save debug output for %s: %v": "%s のデバッグ出力の保存に失敗しました: %v",

		// Errors
		"Failed to calculate layout: %s": "レイアウトの計算に失敗しました: %s",
		"Failed to render: %s":           "描画に失敗しました: %s",
		"Failed to encode image: %s":     "画像のエンコードに失敗しました: %s",
		"Failed to write output: %s":     "出力の書き込みに失敗しました: %s",
	})
}
