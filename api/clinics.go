package api

import (
	"context"

	"petwell_client/model"
)

func (c *Client) FetchClinics(ctx context.Context, token string) ([]model.Clinic, error) {
	var list []model.Clinic
	err := c.do(ctx, MethodOf("clinics"), PathOf("clinics"), token, nil, nil, &list)
	return list, err
}

func (c *Client) FetchNearbyClinics(ctx context.Context, token string, lat, lng float64) ([]model.Clinic, error) {
	var list []model.Clinic
	err := c.do(ctx, MethodOf("nearbyClinics"), PathOf("nearbyClinics"), token, NearbyClinicsQuery(lat, lng), nil, &list)
	return list, err
}

func (c *Client) FetchServices(ctx context.Context, token, clinicID string) ([]model.ClinicService, error) {
	var list []model.ClinicService
	err := c.do(ctx, MethodOf("services"), PathOf("services"), token, ServicesQuery(clinicID), nil, &list)
	return list, err
}

func (c *Client) FetchServiceByID(ctx context.Context, token, serviceID string) (model.ClinicService, error) {
	var svc model.ClinicService
	err := c.do(ctx, MethodOf("serviceById"), PathOf("serviceById", serviceID), token, nil, nil, &svc)
	return svc, err
}

func (c *Client) FetchPets(ctx context.Context, token string) ([]model.Pet, error) {
	var list []model.Pet
	err := c.do(ctx, MethodOf("pets"), PathOf("pets"), token, nil, nil, &list)
	return list, err
}
