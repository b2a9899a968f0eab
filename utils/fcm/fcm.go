package fcm

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/koncoweb/surat-mandiri-desa/config"
	"github.com/koncoweb/surat-mandiri-desa/models"
	"github.com/koncoweb/surat-mandiri-desa/utils/events"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// Prefix untuk nama topic di Firebase
const FCMTopicPrefix = "topic_"

var fcmClient *messaging.Client

// InitFCM menyiapkan Firebase Messaging. Jika FCM_PROJECT_ID kosong,
// notifikasi dimatikan dan consumer hanya menguras event bus.
func InitFCM() {
	cfg := config.LoadFCMConfig()
	if cfg.ProjectID == "" {
		log.Println("FCM_PROJECT_ID not set, push notifications disabled")
		return
	}

	log.Println("Initializing Firebase Admin SDK...")
	ctx := context.Background()

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID})
	if err != nil {
		log.Fatalf("error initializing Firebase app: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("error getting Firebase Messaging client: %v", err)
	}

	fcmClient = client
	log.Println("✅ Firebase Admin SDK initialized successfully.")
}

func mapRoleToTopic(role models.Role) string {
	return FCMTopicPrefix + string(role)
}

// SendNotificationToTopic mengirim satu notifikasi ke sebuah topic.
func SendNotificationToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	if fcmClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}

	msg := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority:     "high",
			Notification: &messaging.AndroidNotification{ChannelID: "default_channel"},
		},
	}

	_, err := fcmClient.Send(ctx, msg)
	return err
}

// StartNotifierConsumer mengkonsumsi event surat dan menerjemahkannya jadi
// notifikasi per role:
//   - surat masuk status pending -> staff & admin (perlu persetujuan)
//   - approved -> operator (siap dikirim)
//   - rejected -> staff & operator (kembali ke pembuat)
//   - sent -> admin (arsip)
func StartNotifierConsumer(ctx context.Context) {
	log.Println("✅ FCM Notifier Consumer started")

	for {
		select {
		case <-ctx.Done():
			return
		case e := <-events.LetterEventBus:
			if fcmClient == nil {
				continue
			}

			go func(event events.LetterEvent) {
				sendCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				data := map[string]string{
					"letter_id":     strconv.FormatUint(uint64(event.Letter.ID), 10),
					"letter_number": event.Letter.LetterNumber,
					"status":        string(event.Letter.Status),
					"type":          string(event.Letter.Type),
				}

				notifyApprovers := func(title, body string) {
					for _, role := range []models.Role{models.RoleStaff, models.RoleAdmin} {
						if err := SendNotificationToTopic(sendCtx, mapRoleToTopic(role), title, body, data); err != nil {
							log.Printf("fcm send to %s failed: %v", role, err)
						}
					}
				}

				switch event.Type {
				case events.LetterCreated:
					if event.Letter.Status == models.StatusPending {
						notifyApprovers("Surat Baru",
							fmt.Sprintf("Surat %s menunggu persetujuan.", event.Letter.LetterNumber))
					}

				case events.LetterStatusMoved:
					switch event.Letter.Status {
					case models.StatusPending:
						notifyApprovers("Pengajuan Surat",
							fmt.Sprintf("Surat %s diajukan untuk disetujui.", event.Letter.LetterNumber))

					case models.StatusApproved:
						topic := mapRoleToTopic(models.RoleOperator)
						body := fmt.Sprintf("Surat %s disetujui dan siap dikirim.", event.Letter.LetterNumber)
						if err := SendNotificationToTopic(sendCtx, topic, "Surat Disetujui", body, data); err != nil {
							log.Printf("fcm send failed: %v", err)
						}

					case models.StatusRejected:
						body := fmt.Sprintf("Surat %s ditolak.", event.Letter.LetterNumber)
						for _, role := range []models.Role{models.RoleStaff, models.RoleOperator} {
							if err := SendNotificationToTopic(sendCtx, mapRoleToTopic(role), "Surat Ditolak", body, data); err != nil {
								log.Printf("fcm send to %s failed: %v", role, err)
							}
						}

					case models.StatusSent:
						topic := mapRoleToTopic(models.RoleAdmin)
						body := fmt.Sprintf("Surat %s telah terkirim.", event.Letter.LetterNumber)
						if err := SendNotificationToTopic(sendCtx, topic, "Surat Terkirim", body, data); err != nil {
							log.Printf("fcm send failed: %v", err)
						}
					}
				}
			}(e)
		}
	}
}
