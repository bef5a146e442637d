package reading

import (
	"fmt"
	"strings"
)

const analysisSystemPrompt = `Sen çocukların sesli okumalarını değerlendiren sabırlı bir okuma koçusun. Değerlendirmelerin nazik, motive edici ve dürüsttür.`

// fallbackFeedback is shown when the analysis call cannot complete.
const fallbackFeedback = "Ses analizi şu an yapılamadı, lütfen tekrar dene."

func buildAnalysisUserMessage(storyText string, excerptRunes int) string {
	excerpt := storyText
	if r := []rune(storyText); len(r) > excerptRunes {
		excerpt = string(r[:excerptRunes])
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Ekteki ses kaydı, şu metnin okunmasıdır: %q...\n", excerpt))
	b.WriteString(`
Lütfen bu okumayı analiz et ve şu formatta JSON çıktısı ver.
ÖNEMLİ: Sadece JSON döndür, başka hiçbir metin ekleme.

{
  "correctWordCount": (okunan doğru kelime sayısı, sayı),
  "accuracyScore": (0-100 arası doğruluk puanı, sayı),
  "feedback": (çocuğa yönelik motive edici ve düzeltici kısa bir geri bildirim, Türkçe)
}`)

	return b.String()
}
