package main

// @title           Crediário API
// @version         1.0
// @description     API para gestão de crediário: vendas a prazo, parcelas,
// @description     estoque e análise de risco de cheques

// @contact.name   API Support
// @contact.email  suporte@erp-crediario.com.br

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
