package adsclient

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/negative-keywords-api/infrastructure/integrator/adplatform/domain"
	"github.com/vfg2006/negative-keywords-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// UnreachableError indica uma falha de transporte ou autenticação: a
// plataforma não chegou a avaliar a mutação. Distinto de uma rejeição da
// API, que é definitiva.
type UnreachableError struct {
	Err error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("plataforma de anúncios inalcançável: %v", e.Err)
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}

// IsUnreachable informa se o erro é uma falha transitória de alcance
func IsUnreachable(err error) bool {
	var unreachable *UnreachableError
	return errors.As(err, &unreachable)
}

type Client interface {
	GetCampaignByID(campaignID string) (*adsdomain.Campaign, error)
	GetAdGroupByID(adGroupID string) (*adsdomain.AdGroup, error)
	GetSharedListByID(sharedListID string) (*adsdomain.SharedList, error)
	AddCampaignNegativeKeyword(campaignID, text, matchType string) error
	AddAdGroupNegativeKeyword(adGroupID, text, matchType string) error
	AddSharedListNegativeKeyword(sharedListID, text, matchType string) error
	ListCampaigns() ([]adsdomain.Campaign, error)
	ListAdGroups() ([]adsdomain.AdGroup, error)
	ListSharedLists() ([]adsdomain.SharedList, error)
}

type AdsClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AdsClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.AdPlatform.TimeoutSeconds) * time.Second,
		},
	}
}

func (c *AdsClient) GetCampaignByID(campaignID string) (*adsdomain.Campaign, error) {
	body, err := c.doRequest(http.MethodGet, fmt.Sprintf("/campaigns/%s", campaignID), nil)
	if err != nil {
		return nil, err
	}

	campaign := &adsdomain.Campaign{}
	if err := json.Unmarshal(body, campaign); err != nil {
		return nil, fmt.Errorf("erro ao decodificar campanha: %w", err)
	}

	return campaign, nil
}

func (c *AdsClient) GetAdGroupByID(adGroupID string) (*adsdomain.AdGroup, error) {
	body, err := c.doRequest(http.MethodGet, fmt.Sprintf("/ad-groups/%s", adGroupID), nil)
	if err != nil {
		return nil, err
	}

	adGroup := &adsdomain.AdGroup{}
	if err := json.Unmarshal(body, adGroup); err != nil {
		return nil, fmt.Errorf("erro ao decodificar grupo de anúncios: %w", err)
	}

	return adGroup, nil
}

func (c *AdsClient) GetSharedListByID(sharedListID string) (*adsdomain.SharedList, error) {
	body, err := c.doRequest(http.MethodGet, fmt.Sprintf("/shared-lists/%s", sharedListID), nil)
	if err != nil {
		return nil, err
	}

	sharedList := &adsdomain.SharedList{}
	if err := json.Unmarshal(body, sharedList); err != nil {
		return nil, fmt.Errorf("erro ao decodificar lista compartilhada: %w", err)
	}

	return sharedList, nil
}

func (c *AdsClient) AddCampaignNegativeKeyword(campaignID, text, matchType string) error {
	return c.addNegativeKeyword(fmt.Sprintf("/campaigns/%s/negative-keywords", campaignID), text, matchType)
}

func (c *AdsClient) AddAdGroupNegativeKeyword(adGroupID, text, matchType string) error {
	return c.addNegativeKeyword(fmt.Sprintf("/ad-groups/%s/negative-keywords", adGroupID), text, matchType)
}

func (c *AdsClient) AddSharedListNegativeKeyword(sharedListID, text, matchType string) error {
	return c.addNegativeKeyword(fmt.Sprintf("/shared-lists/%s/negative-keywords", sharedListID), text, matchType)
}

func (c *AdsClient) addNegativeKeyword(path, text, matchType string) error {
	payload, err := json.Marshal(map[string]string{
		"text":       text,
		"match_type": matchType,
	})
	if err != nil {
		return fmt.Errorf("erro ao serializar payload: %w", err)
	}

	_, err = c.doRequest(http.MethodPost, path, payload)
	return err
}

func (c *AdsClient) ListCampaigns() ([]adsdomain.Campaign, error) {
	body, err := c.doRequest(http.MethodGet, "/campaigns?limit=500", nil)
	if err != nil {
		return nil, err
	}

	var response struct {
		Data   []adsdomain.Campaign `json:"data"`
		Paging adsdomain.Paging     `json:"paging"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar campanhas: %w", err)
	}

	return response.Data, nil
}

func (c *AdsClient) ListAdGroups() ([]adsdomain.AdGroup, error) {
	body, err := c.doRequest(http.MethodGet, "/ad-groups?limit=500", nil)
	if err != nil {
		return nil, err
	}

	var response struct {
		Data   []adsdomain.AdGroup `json:"data"`
		Paging adsdomain.Paging    `json:"paging"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar grupos de anúncios: %w", err)
	}

	return response.Data, nil
}

func (c *AdsClient) ListSharedLists() ([]adsdomain.SharedList, error) {
	body, err := c.doRequest(http.MethodGet, "/shared-lists?limit=500", nil)
	if err != nil {
		return nil, err
	}

	var response struct {
		Data   []adsdomain.SharedList `json:"data"`
		Paging adsdomain.Paging       `json:"paging"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar listas compartilhadas: %w", err)
	}

	return response.Data, nil
}

// doRequest executa a chamada HTTP e classifica o desfecho: erro de
// transporte vira UnreachableError (transitório), status de erro da API
// vira um erro comum com o texto da plataforma preservado literalmente.
func (c *AdsClient) doRequest(method, path string, payload []byte) ([]byte, error) {
	url := fmt.Sprintf("%s/customers/%s%s", c.Cfg.AdPlatform.URL, c.Cfg.AdPlatform.CustomerID, path)

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.AdPlatform.AccessToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		}).Warn("adplatform: request did not reach the platform")
		return nil, &UnreachableError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnreachableError{Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode >= http.StatusInternalServerError {
		// Auth inválida ou indisponibilidade do lado deles: ninguém avaliou
		// a mutação, então é transitório
		return nil, &UnreachableError{Err: fmt.Errorf("status %s: %s", resp.Status, string(body))}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		errResponse := &adsdomain.ErrorResponse{}
		if err := json.Unmarshal(body, errResponse); err == nil && errResponse.Error.Message != "" {
			return nil, errors.New(errResponse.Error.Message)
		}
		return nil, fmt.Errorf("status %s: %s", resp.Status, string(body))
	}

	return body, nil
}
