package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// Seeds the API with randomized clients, devices and repair jobs through
// the public HTTP surface. Useful for local development and load checks.

var firstNames = []string{"Alice", "Bruno", "Carla", "Diego", "Emma", "Farid", "Greta", "Hugo", "Ines", "Jonas"}
var lastNames = []string{"Martin", "Silva", "Novak", "Dubois", "Keller", "Rossi", "Haddad", "Olsen", "Petit", "Weber"}
var deviceTypes = []string{"laptop", "phone", "tablet", "console", "desktop"}
var brands = []string{"Acme", "Nordix", "Volta", "Kite", "Pixelon"}
var issues = []string{"does not power on", "cracked screen", "battery drains fast", "keyboard unresponsive", "overheats under load"}
var statuses = []string{"status1", "status2", "status3", "status4", "status5"}
var emergencies = []string{"Low", "Medium", "High"}

type apiClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func (c *apiClient) do(method, path string, body interface{}, out interface{}) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewBuffer(data)
	}
	req, err := http.NewRequest(method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, data)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *apiClient) fetchToken() error {
	var res struct {
		Token string `json:"token"`
	}
	if err := c.do(http.MethodGet, "/get-token", nil, &res); err != nil {
		return err
	}
	c.token = res.Token
	return nil
}

func main() {
	baseURL := flag.String("api", "http://localhost:8000", "base URL of the repair-tracker API")
	numClients := flag.Int("clients", 5, "number of clients to create")
	maxDevices := flag.Int("max-devices", 3, "max devices per client")
	maxJobs := flag.Int("max-jobs", 2, "max jobs per device")
	delay := flag.Duration("delay", 100*time.Millisecond, "delay between requests")
	flag.Parse()

	api := &apiClient{baseURL: *baseURL, http: &http.Client{Timeout: 10 * time.Second}}
	if err := api.fetchToken(); err != nil {
		log.WithError(err).Fatal("failed to obtain token")
	}
	log.Info("token obtained, seeding data")

	for i := 0; i < *numClients; i++ {
		client := map[string]string{
			"firstName":   firstNames[rand.Intn(len(firstNames))],
			"lastName":    lastNames[rand.Intn(len(lastNames))],
			"phoneNumber": fmt.Sprintf("+33 6 %08d", rand.Intn(100000000)),
			"email":       fmt.Sprintf("client%d@example.com", rand.Intn(100000)),
		}
		var createdClient struct {
			ID string `json:"_id"`
		}
		if err := api.do(http.MethodPost, "/clients", client, &createdClient); err != nil {
			log.WithError(err).Error("failed to create client")
			continue
		}
		log.WithField("client_id", createdClient.ID).Info("client created")
		time.Sleep(*delay)

		for d := 0; d < 1+rand.Intn(*maxDevices); d++ {
			device := map[string]string{
				"clientId": createdClient.ID,
				"type":     deviceTypes[rand.Intn(len(deviceTypes))],
				"brand":    brands[rand.Intn(len(brands))],
				"model":    fmt.Sprintf("M-%03d", rand.Intn(1000)),
				"serial":   fmt.Sprintf("SN%08d", rand.Intn(100000000)),
			}
			var createdDevice struct {
				ID string `json:"_id"`
			}
			if err := api.do(http.MethodPost, "/devices", device, &createdDevice); err != nil {
				log.WithError(err).Error("failed to create device")
				continue
			}
			log.WithField("device_id", createdDevice.ID).Info("device created")
			time.Sleep(*delay)

			for j := 0; j < 1+rand.Intn(*maxJobs); j++ {
				job := map[string]interface{}{
					"client": map[string]string{"_id": createdClient.ID},
					"device": map[string]string{"_id": createdDevice.ID},
					"job": map[string]string{
						"status":         statuses[rand.Intn(len(statuses))],
						"emergencyLevel": emergencies[rand.Intn(len(emergencies))],
						"issue":          issues[rand.Intn(len(issues))],
						"notes":          "seeded by simulator",
					},
				}
				var createdJob struct {
					Job struct {
						UniqueCode string `json:"uniqueCode"`
					} `json:"job"`
				}
				if err := api.do(http.MethodPost, "/repairs", job, &createdJob); err != nil {
					log.WithError(err).Error("failed to create repair job")
					continue
				}
				log.WithField("code", createdJob.Job.UniqueCode).Info("repair job created")
				time.Sleep(*delay)
			}
		}
	}
	log.Info("seeding complete")
}
