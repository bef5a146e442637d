package reward

import (
	"fmt"

	"github.com/tolgahan/oka/internal/story"
)

const sceneSystemPrompt = `Sen çocuk boyama sayfaları için sahne betimlemeleri yazan bir asistansın. Çıktıların her zaman kısa, basit ve İngilizce olur.`

func buildSceneUserMessage(st *story.Story) string {
	return fmt.Sprintf(`Aşağıdaki hikaye için bir boyama sayfası görseli oluşturacağız.
Bana sadece hikayeyi anlatan, karakterleri ve mekanı içeren ÇOK BASİT ve KISA bir İngilizce sahne betimlemesi ver.

Hikaye Başlığı: %s
Tema: %s
İçerik: %s

Kurallar:
- Sadece sahneyi anlat (Örn: "A cute rabbit holding a carrot in a garden")
- Karmaşık detaylardan kaçın.
- Maksimum 10 kelime olsun.`, st.Title, st.Theme, st.Content)
}
