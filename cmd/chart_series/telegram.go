package main

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

// sendChart отправляет готовый PNG в чат. Небольшие картинки уходят как
// фото, большие телеграм пережимает, поэтому их отправляем документом.
func sendChart(token string, chatID int64, fileName, title string, graph []byte) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Println("tg error", err)
		return
	}

	pngFile := tgbotapi.FileBytes{
		Name:  fileName,
		Bytes: graph,
	}
	caption := fmt.Sprintf("График: %s", title)

	var maxSizePhoto = 150000
	if len(graph) < maxSizePhoto {
		docMsg := tgbotapi.NewPhotoUpload(chatID, pngFile)
		docMsg.Caption = caption
		if _, err := api.Send(docMsg); err != nil {
			log.Printf("Ошибка отправки графика %s: %v", fileName, err)
		}
		return
	}

	docMsg := tgbotapi.NewDocumentUpload(chatID, pngFile)
	docMsg.Caption = caption
	if _, err := api.Send(docMsg); err != nil {
		log.Printf("Ошибка отправки графика %s: %v", fileName, err)
	}
}
